package cache

import (
	"context"

	"github.com/sirupsen/logrus"
)

// NavigationType segue os valores de PerformanceNavigationTiming.type
type NavigationType string

const (
	NavigationNavigate    NavigationType = "navigate"
	NavigationReload      NavigationType = "reload"
	NavigationBackForward NavigationType = "back_forward"
	NavigationPrerender   NavigationType = "prerender"
)

func (n NavigationType) Known() bool {
	switch n {
	case NavigationNavigate, NavigationReload, NavigationBackForward, NavigationPrerender:
		return true
	}
	return false
}

// NavigationResult informa como a navegação foi classificada
type NavigationResult struct {
	Reload  bool `json:"reload"`
	Flushed int  `json:"flushed"`
	// FromSessionFlag indica que o tipo não foi informado e a flag de sessão decidiu
	FromSessionFlag bool `json:"from_session_flag"`
}

// HandleNavigation faz o flush completo quando a navegação é um reload.
// Sem tipo conhecido, a primeira carga da sessão grava a flag e as seguintes contam como reload.
func (l *Layer) HandleNavigation(ctx context.Context, sessionID string, navType NavigationType) (NavigationResult, error) {
	result := NavigationResult{}

	switch {
	case navType == NavigationReload:
		result.Reload = true
	case navType.Known():
		l.markSession(ctx, sessionID)
	default:
		result.FromSessionFlag = true
		result.Reload = l.sessionSeen(ctx, sessionID)
		l.markSession(ctx, sessionID)
	}

	logrus.WithFields(logrus.Fields{
		"session":   sessionID,
		"type":      navType,
		"reload":    result.Reload,
		"from_flag": result.FromSessionFlag,
	}).Debug("cache: navegação classificada")

	if !result.Reload {
		return result, nil
	}

	flushed, err := l.FlushAll(ctx)
	if err != nil {
		return result, err
	}
	result.Flushed = flushed
	return result, nil
}

func (l *Layer) sessionSeen(ctx context.Context, sessionID string) bool {
	if sessionID == "" {
		return false
	}
	return l.Get(ctx, SessionKey(sessionID)).Found
}

func (l *Layer) markSession(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	if err := l.store.Put(ctx, SessionKey(sessionID), Entry{Payload: []byte("1"), WrittenAt: l.now()}); err != nil {
		logrus.WithError(err).WithField("session", sessionID).Warn("cache: erro ao gravar flag de sessão")
	}
}
