package email_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fezwebco/getintouch/pkg/email"
)

type sendGridPayload struct {
	From struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"from"`
	Subject          string `json:"subject"`
	Personalizations []struct {
		To []struct {
			Email string `json:"email"`
		} `json:"to"`
	} `json:"personalizations"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
	ReplyTo *struct {
		Email string `json:"email"`
	} `json:"reply_to"`
	Categories []string `json:"categories"`
}

func TestNewSendGridClient(t *testing.T) {
	t.Parallel()

	client, err := email.NewSendGridClient("")
	assert.Nil(t, client)
	assert.ErrorIs(t, err, email.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "SendGridAPIKey is required")

	client, err = email.NewSendGridClient("SG.key")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestSendGridClient_SendEmail(t *testing.T) {
	t.Parallel()

	t.Run("posts v3 mail payload", func(t *testing.T) {
		t.Parallel()

		var (
			gotPath   string
			gotMethod string
			gotAuth   string
			payload   sendGridPayload
		)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotMethod = r.Method
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&payload)
			w.WriteHeader(http.StatusAccepted)
		}))
		t.Cleanup(srv.Close)

		client, err := email.NewSendGridClient("SG.key", email.WithSendGridHost(srv.URL))
		require.NoError(t, err)

		msg := validMessage()
		msg.Tag = "owner_notification"
		require.NoError(t, client.SendEmail(context.Background(), msg))

		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "/v3/mail/send", gotPath)
		assert.Equal(t, "Bearer SG.key", gotAuth)
		assert.Equal(t, "owner@example.com", payload.From.Email)
		assert.Equal(t, "Portfolio Contact Form", payload.From.Name)
		assert.Equal(t, msg.Subject, payload.Subject)
		require.Len(t, payload.Personalizations, 1)
		require.Len(t, payload.Personalizations[0].To, 1)
		assert.Equal(t, "jane@example.com", payload.Personalizations[0].To[0].Email)
		require.Len(t, payload.Content, 1)
		assert.Equal(t, "text/html", payload.Content[0].Type)
		assert.Equal(t, msg.BodyHTML, payload.Content[0].Value)
		require.NotNil(t, payload.ReplyTo)
		assert.Equal(t, "jane@example.com", payload.ReplyTo.Email)
		assert.Equal(t, []string{"owner_notification"}, payload.Categories)
	})

	t.Run("omits reply-to when empty", func(t *testing.T) {
		t.Parallel()

		var payload sendGridPayload
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&payload)
			w.WriteHeader(http.StatusAccepted)
		}))
		t.Cleanup(srv.Close)

		client, err := email.NewSendGridClient("SG.key", email.WithSendGridHost(srv.URL))
		require.NoError(t, err)

		msg := validMessage()
		msg.ReplyTo = ""
		require.NoError(t, client.SendEmail(context.Background(), msg))
		assert.Nil(t, payload.ReplyTo)
		assert.Empty(t, payload.Categories)
	})

	t.Run("non-2xx status is a failure", func(t *testing.T) {
		t.Parallel()

		for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusTooManyRequests, http.StatusInternalServerError} {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(status)
				_, _ = w.Write([]byte(`{"errors":[{"message":"rejected"}]}`))
			}))

			client, err := email.NewSendGridClient("SG.key", email.WithSendGridHost(srv.URL))
			require.NoError(t, err)

			err = client.SendEmail(context.Background(), validMessage())
			assert.ErrorIs(t, err, email.ErrFailedToSendEmail, "status %d", status)
			srv.Close()
		}
	})

	t.Run("invalid message is not sent", func(t *testing.T) {
		t.Parallel()

		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))
		t.Cleanup(srv.Close)

		client, err := email.NewSendGridClient("SG.key", email.WithSendGridHost(srv.URL))
		require.NoError(t, err)

		msg := validMessage()
		msg.To = "not-an-email"
		err = client.SendEmail(context.Background(), msg)
		assert.ErrorIs(t, err, email.ErrInvalidParams)
		assert.False(t, called)
	})
}
