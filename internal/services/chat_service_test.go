package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wrdo/hunt/internal/services"
)

func newChatService() *services.ChatService {
	return services.NewChatService(nil, newMarketService())
}

func TestComposeSymbolQuestion(t *testing.T) {
	svc := newChatService()

	reply := svc.Compose("what do you think about HUNT here?")
	assert.Contains(t, reply, "Hunt Capital Holdings")
	assert.Contains(t, reply, "HUNT")
	assert.Contains(t, reply, "RSI")
}

func TestComposeLowercaseSymbol(t *testing.T) {
	svc := newChatService()

	// Symbol matching is case-sensitive on the prompt's uppercased form.
	reply := svc.Compose("is wtec overextended?")
	assert.Contains(t, reply, "WRDO Technology ETF")
}

func TestComposeMarketSummary(t *testing.T) {
	svc := newChatService()

	reply := svc.Compose("how does the tape look today?")
	assert.Contains(t, reply, "The market is currently closed")
	assert.Contains(t, reply, "strongest name")
}

func TestComposeDeterministic(t *testing.T) {
	a := newChatService().Compose("thoughts on WBRD?")
	b := newChatService().Compose("thoughts on WBRD?")
	assert.Equal(t, a, b)
}
