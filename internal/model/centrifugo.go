package model

import "github.com/golang-jwt/jwt/v5"

type CentrifugoEvent struct {
	Method string      `json:"method"`
	Params interface{} `json:"params"`
}

type CentrifugoEventParams struct {
	Channel        string  `json:"channel"`
	Data           Message `json:"data"`
	IdempotencyKey string  `json:"idempotency_key,omitempty"`
}

type CentrifugoConnectClaims struct {
	jwt.RegisteredClaims
}

type CentrifugoSubscribeClaims struct {
	jwt.RegisteredClaims

	Channel string `json:"channel"`
	Client  string `json:"client,omitempty"`

	UserID         string           `json:"user_id"`
	Kind           ConversationKind `json:"kind"`
	ConversationID string           `json:"conversation_id"`
}
