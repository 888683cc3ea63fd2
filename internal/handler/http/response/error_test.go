package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/access"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/account"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/master/page"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/master/team"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/roster"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", validator.ValidationErrors{{Field: "days", Message: "bad"}}, http.StatusBadRequest, CodeValidation},
		{"unauthenticated", access.ErrUnauthenticated, http.StatusUnauthorized, CodeUnauthorized},
		{"awaiting approval", access.ErrAwaitingApproval, http.StatusForbidden, CodeAwaitingApproval},
		{"forbidden", access.ErrForbidden, http.StatusForbidden, CodeForbidden},
		{"wrapped forbidden", fmt.Errorf("approve: %w", access.ErrForbidden), http.StatusForbidden, CodeForbidden},
		{"account not found", account.ErrAccountNotFound, http.StatusNotFound, CodeNotFound},
		{"team exists", team.ErrTeamNameExists, http.StatusConflict, CodeConflict},
		{"page team missing", page.ErrTeamNotFound, http.StatusNotFound, CodeNotFound},
		{"page key exists", page.ErrPageKeyExists, http.StatusConflict, CodeConflict},
		{"slot taken", roster.ErrSlotTaken, http.StatusConflict, CodeConflict},
		{"store failure", errors.New("dial tcp: connection refused"), http.StatusInternalServerError, CodeStoreFailure},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			HandleError(rec, c.err)

			assert.Equal(t, c.status, rec.Code)
			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, c.code, body.Error.Code)
		})
	}
}

func TestHandleError_ValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()

	HandleError(rec, validator.ValidationErrors{{Field: "days", Message: "days must be a whole number between 1 and 90"}})

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "days must be a whole number between 1 and 90", body.Error.Details["days"])
}

func TestFile(t *testing.T) {
	rec := httptest.NewRecorder()

	File(rec, "sales.xlsx", "application/octet-stream", []byte("abc"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="sales.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "3", rec.Header().Get("Content-Length"))
	assert.Equal(t, "abc", rec.Body.String())
}
