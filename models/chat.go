// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MessageType tells the receiver how to render a chat message.
type MessageType string

const (
	MessageTypeText  MessageType = "text"
	MessageTypeImage MessageType = "image"
	MessageTypeFile  MessageType = "file"
)

// Attachment describes a file already uploaded elsewhere and referenced from
// a chat message.
type Attachment struct {
	FileName string `json:"fileName"`
	URL      string `json:"url"`
	MimeType string `json:"mimeType,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

// OutgoingMessage is the payload of the "send_message" event.
type OutgoingMessage struct {
	ReceiverID  string       `json:"receiverId"`
	Content     string       `json:"content"`
	MessageType MessageType  `json:"messageType,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// ChatMessage is the payload of the "receive_message" event.
type ChatMessage struct {
	ID          string       `json:"_id,omitempty"`
	SenderID    string       `json:"senderId"`
	ReceiverID  string       `json:"receiverId"`
	Content     string       `json:"content"`
	MessageType MessageType  `json:"messageType,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	CreatedAt   time.Time    `json:"createdAt,omitempty"`
}

// TypingNotice is the payload of "typing_start" and "typing_stop".
type TypingNotice struct {
	ReceiverID string `json:"receiverId"`
}

// TypingEvent is the payload of "user_typing" and "user_stop_typing".
type TypingEvent struct {
	UserID string `json:"userId"`
}
