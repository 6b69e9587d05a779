package crmdomain

// Collection é o nome de uma coleção exposta pela API do CRM
type Collection string

const (
	CollectionProject   Collection = "projeto"
	CollectionBudget    Collection = "orcamento"
	CollectionLineItem  Collection = "item_orcamento"
	CollectionSeller    Collection = "vendedor"
	CollectionArchitect Collection = "arquiteto"
	CollectionClient    Collection = "cliente"
	CollectionStore     Collection = "loja"
)

// ReferenceCollections são as listas quase estáticas (TTL longo)
var ReferenceCollections = []Collection{
	CollectionSeller,
	CollectionArchitect,
	CollectionClient,
	CollectionStore,
}

func (c Collection) String() string {
	return string(c)
}

func (c Collection) IsReference() bool {
	for _, ref := range ReferenceCollections {
		if c == ref {
			return true
		}
	}
	return false
}

// Record é um registro bruto como devolvido pelo CRM
type Record map[string]any

// ID retorna o identificador do registro ("_id")
func (r Record) ID() string {
	if id, ok := r[FieldID].(string); ok {
		return id
	}
	return ""
}

// Response é o envelope de paginação por cursor do CRM
type Response struct {
	Response Page `json:"response"`
}

type Page struct {
	Cursor    int      `json:"cursor"`
	Results   []Record `json:"results"`
	Count     int      `json:"count"`
	Remaining int      `json:"remaining"`
}
