package http

import (
	"movi-ops-console/internal/assistant"
	"movi-ops-console/internal/model"
)

// --- Request DTOs ---

type submitReq struct {
	Text string `json:"text" binding:"required"`
	Page string `json:"page"`
}

func (r submitReq) toInput(sessionID string) assistant.SubmitInput {
	return assistant.SubmitInput{
		SessionID: sessionID,
		Text:      r.Text,
		Page:      model.ParsePage(r.Page),
	}
}

// --- Response DTOs ---

type consequenceResp struct {
	RequiresConfirmation bool   `json:"requiresConfirmation"`
	Reason               string `json:"reason"`
}

// metaResp carries the dispatch outcome attached to an assistant message. The
// retained intent envelope stays server-side; clients only see whether a
// confirmation is pending.
type metaResp struct {
	Data        any              `json:"data,omitempty"`
	Consequence *consequenceResp `json:"consequence,omitempty"`
}

type messageResp struct {
	ID   string    `json:"id"`
	Role string    `json:"role"`
	Text string    `json:"text"`
	Meta *metaResp `json:"meta,omitempty"`
}

func newMessageResp(msg assistant.Message) messageResp {
	out := messageResp{
		ID:   msg.ID,
		Role: string(msg.Role),
		Text: msg.Text,
	}
	if msg.Meta != nil {
		meta := &metaResp{Data: msg.Meta.Data}
		if msg.Meta.Consequence != nil {
			meta.Consequence = &consequenceResp{
				RequiresConfirmation: msg.Meta.Consequence.RequiresConfirmation,
				Reason:               msg.Meta.Consequence.Reason,
			}
		}
		out.Meta = meta
	}
	return out
}

func newMessageResps(msgs []assistant.Message) []messageResp {
	out := make([]messageResp, len(msgs))
	for i, msg := range msgs {
		out[i] = newMessageResp(msg)
	}
	return out
}

type sessionResp struct {
	SessionID string        `json:"session_id"`
	Messages  []messageResp `json:"messages"`
}

func (h *handler) newSessionResp(out assistant.StartSessionOutput) sessionResp {
	return sessionResp{
		SessionID: out.SessionID,
		Messages:  newMessageResps(out.Messages),
	}
}

type exchangeResp struct {
	Messages []messageResp `json:"messages"`
}

func (h *handler) newExchangeResp(out assistant.ExchangeOutput) exchangeResp {
	return exchangeResp{Messages: newMessageResps(out.Messages)}
}

type historyResp struct {
	Messages []messageResp `json:"messages"`
}

func (h *handler) newHistoryResp(msgs []assistant.Message) historyResp {
	return historyResp{Messages: newMessageResps(msgs)}
}

type promptsResp struct {
	Prompts []string `json:"prompts"`
}
