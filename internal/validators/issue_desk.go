// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"slices"
	"strings"

	"github.com/MKhiriev/go-issue-desk/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldRole        = "role"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldPriority    = "priority"
	FieldStatus      = "status"
	FieldReceiver    = "receiver"
	FieldContent     = "content"
)

var allowedPriorities = []models.IssuePriority{
	models.IssuePriorityLow,
	models.IssuePriorityMedium,
	models.IssuePriorityHigh,
}

// IssueDeskValidator implements Validator for the requests the client
// builds: LoginRequest, RegisterRequest, CreateIssueRequest,
// UpdateIssueRequest and OutgoingMessage, as values or pointers.
type IssueDeskValidator struct {
}

func NewIssueDeskValidator() Validator {
	return &IssueDeskValidator{}
}

func (v *IssueDeskValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.CreateIssueRequest:
		return v.validateCreateIssue(value, fields...)
	case *models.CreateIssueRequest:
		return v.validateCreateIssue(*value, fields...)

	case models.UpdateIssueRequest:
		return v.validateUpdateIssue(value, fields...)
	case *models.UpdateIssueRequest:
		return v.validateUpdateIssue(*value, fields...)

	case models.OutgoingMessage:
		return v.validateOutgoingMessage(value, fields...)
	case *models.OutgoingMessage:
		return v.validateOutgoingMessage(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func validateEmail(email string) error {
	if blank(email) {
		return ErrEmptyEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != strings.TrimSpace(email) {
		return ErrInvalidEmail
	}
	return nil
}

func (v *IssueDeskValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if blank(req.Email) {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *IssueDeskValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if blank(req.Name) {
				return ErrEmptyName
			}
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		case FieldRole:
			if !req.Role.Valid() {
				return ErrInvalidRole
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *IssueDeskValidator) validateCreateIssue(req models.CreateIssueRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldCategory, FieldPriority}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if blank(req.Title) {
				return ErrEmptyTitle
			}
		case FieldDescription:
			if blank(req.Description) {
				return ErrEmptyDescription
			}
		case FieldCategory:
			if blank(req.Category) {
				return ErrEmptyCategory
			}
		case FieldPriority:
			// empty lets the backend pick its default
			if req.Priority != "" && !slices.Contains(allowedPriorities, req.Priority) {
				return ErrInvalidPriority
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *IssueDeskValidator) validateUpdateIssue(req models.UpdateIssueRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldStatus:
			if req.Status != nil && !slices.Contains(models.IssueStatuses, *req.Status) {
				return ErrInvalidStatus
			}
		default:
			return ErrUnknownField
		}
	}

	if req.Status == nil && req.AdminNotes == nil && req.AssignedTo == nil {
		return ErrNoFieldsToUpdate
	}

	return nil
}

func (v *IssueDeskValidator) validateOutgoingMessage(msg models.OutgoingMessage, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldReceiver, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldReceiver:
			if blank(msg.ReceiverID) {
				return ErrEmptyReceiver
			}
		case FieldContent:
			if blank(msg.Content) && len(msg.Attachments) == 0 {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
