package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jo4ovms/psychology-project/internal/client/domain"
	apperrors "github.com/jo4ovms/psychology-project/internal/errors"
)

func TestClientRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     ClientRequest
		wantErr bool
	}{
		{name: "minimal", req: ClientRequest{Name: "Maria"}},
		{
			name: "complete",
			req: ClientRequest{
				Name:      "Maria",
				Email:     "maria@example.com",
				Phone:     "+55 (11) 99999-0000",
				BirthDate: "1990-05-17",
			},
		},
		{name: "missing name", req: ClientRequest{Email: "maria@example.com"}, wantErr: true},
		{name: "bad email", req: ClientRequest{Name: "Maria", Email: "maria"}, wantErr: true},
		{name: "bad phone", req: ClientRequest{Name: "Maria", Phone: "call me"}, wantErr: true},
		{name: "bad birth date", req: ClientRequest{Name: "Maria", BirthDate: "17/05/1990"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestClientRequest_ToInput(t *testing.T) {
	doc := "123"
	input := (&ClientRequest{Name: "Maria", BirthDate: "1990-05-17", Document: &doc}).ToInput()

	require.NotNil(t, input.BirthDate)
	assert.Equal(t, time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC), *input.BirthDate)
	assert.Equal(t, &doc, input.Document)

	assert.Nil(t, (&ClientRequest{Name: "Maria"}).ToInput().BirthDate)
}

func TestMapClientToResponse(t *testing.T) {
	birthDate := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	resp := MapClientToResponse(&domain.Client{ID: 1, UserID: 42, Name: "Maria", BirthDate: &birthDate})

	require.NotNil(t, resp.BirthDate)
	assert.Equal(t, "1990-05-17", *resp.BirthDate)
	assert.Nil(t, resp.Document)
	assert.Nil(t, resp.Notes)

	list := MapClientsToListResponse(nil)
	assert.NotNil(t, list.Data)
}
