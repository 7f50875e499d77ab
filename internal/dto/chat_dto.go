package dto

import "time"

type ChatMessageRequest struct {
	SessionId string  `json:"sessionId" validate:"required"`
	UserId    *string `json:"userId"`
	UserEmail *string `json:"userEmail"`
	UserName  *string `json:"userName"`
}

type ChatMessageResponse struct {
	SessionId     string    `json:"sessionId"`
	StartedAt     time.Time `json:"startedAt"`
	LastMessageAt time.Time `json:"lastMessageAt"`
	Created       bool      `json:"created"`
}

type ChatSendRequest struct {
	SessionId string `json:"sessionId" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type ChatSendResponse struct {
	Reply string `json:"reply"`
}
