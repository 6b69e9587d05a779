package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEntries(t *testing.T, layer *Layer) {
	t.Helper()
	ctx := context.Background()
	require.True(t, layer.Set(ctx, AggregateFunnel, Prefix(AggregateFunnel)+"a", payload{Value: 1}))
	require.True(t, layer.Set(ctx, AggregateReference, ReferenceKey("loja"), payload{Value: 2}))
}

func TestLayer_HandleNavigation(t *testing.T) {
	tests := []struct {
		name        string
		calls       []NavigationType
		wantReload  bool
		wantFlushed int
		wantFlag    bool
	}{
		{
			name:        "reload explícito faz flush",
			calls:       []NavigationType{NavigationReload},
			wantReload:  true,
			wantFlushed: 2,
		},
		{
			name:  "navegação comum mantém o cache",
			calls: []NavigationType{NavigationNavigate},
		},
		{
			name:  "back/forward mantém o cache",
			calls: []NavigationType{NavigationNavigate, NavigationBackForward},
		},
		{
			name:     "sem tipo na primeira carga apenas grava a flag",
			calls:    []NavigationType{""},
			wantFlag: true,
		},
		{
			name:        "sem tipo com a sessão já vista é reload",
			calls:       []NavigationType{"", "desconhecido"},
			wantReload:  true,
			wantFlushed: 2,
			wantFlag:    true,
		},
		{
			name:        "navegação registrada antes conta para a flag",
			calls:       []NavigationType{NavigationNavigate, ""},
			wantReload:  true,
			wantFlushed: 2,
			wantFlag:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			layer, _ := newTestLayer(NewMemoryStore())
			seedEntries(t, layer)

			var result NavigationResult
			var err error
			for _, navType := range tt.calls {
				result, err = layer.HandleNavigation(ctx, "sessao-1", navType)
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantReload, result.Reload)
			assert.Equal(t, tt.wantFlushed, result.Flushed)
			assert.Equal(t, tt.wantFlag, result.FromSessionFlag)
		})
	}
}

func TestLayer_HandleNavigation_WithoutSession(t *testing.T) {
	layer, _ := newTestLayer(NewMemoryStore())

	for i := 0; i < 2; i++ {
		result, err := layer.HandleNavigation(context.Background(), "", "")
		require.NoError(t, err)
		assert.False(t, result.Reload)
	}
}
