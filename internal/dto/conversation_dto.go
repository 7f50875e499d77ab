package dto

import (
	"encoding/json"
	"time"
)

type SessionListItem struct {
	SessionId     string              `json:"sessionId"`
	MessageCount  int64               `json:"messageCount"`
	StartedAt     time.Time           `json:"startedAt"`
	LastMessageAt time.Time           `json:"lastMessageAt"`
	UserName      *string             `json:"userName,omitempty"`
	UserEmail     *string             `json:"userEmail,omitempty"`
	Summary       *SummaryResponse    `json:"summary,omitempty"`
	Customer      *LinkedCustomerInfo `json:"customer,omitempty"`
}

type LinkedCustomerInfo struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type SessionListResponse struct {
	Sessions   []*SessionListItem `json:"sessions"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	Total      int64              `json:"total"`
	TotalPages int                `json:"totalPages"`
}

type MessageItem struct {
	Id        int64           `json:"id"`
	Type      string          `json:"type"`
	Content   string          `json:"content"`
	ToolCalls json.RawMessage `json:"toolCalls,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type SessionDetailResponse struct {
	SessionId     string         `json:"sessionId"`
	UserName      *string        `json:"userName,omitempty"`
	UserEmail     *string        `json:"userEmail,omitempty"`
	StartedAt     time.Time      `json:"startedAt"`
	LastMessageAt time.Time      `json:"lastMessageAt"`
	Messages      []*MessageItem `json:"messages"`
}

type SummaryResponse struct {
	SessionId    string    `json:"sessionId"`
	CustomerName string    `json:"customerName"`
	PhoneNumber  *string   `json:"phoneNumber"`
	Summary      string    `json:"summary"`
	NextAction   string    `json:"nextAction"`
	Cached       bool      `json:"cached"`
	CreatedAt    time.Time `json:"createdAt"`
}
