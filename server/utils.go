package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-home-io/gluehome/plugins/common"
	"github.com/go-home-io/gluehome/providers"
)

// Plain HTTP_200 API response.
func respondOk(writer http.ResponseWriter) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusOK)
	io.WriteString(writer, `{ "status": "OK" }`) // nolint: errcheck
}

// Generic API respond.
func respond(writer http.ResponseWriter, data interface{}) {
	respondStatus(writer, http.StatusOK, data)
}

// Responds with JSON body and provided status.
func respondStatus(writer http.ResponseWriter, status int, data interface{}) {
	d, err := json.Marshal(data)
	if err != nil {
		respondError(writer, http.StatusInternalServerError, err.Error())
		return
	}

	respondRaw(writer, status, d)
}

// Responds with already marshaled body.
func respondRaw(writer http.ResponseWriter, status int, body []byte) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	writer.Write(body) // nolint: errcheck
}

// Return HTTP_FORBIDDEN status.
func respondUnAuth(writer http.ResponseWriter) {
	http.Error(writer, "Forbidden", http.StatusForbidden)
}

// Plain error API response.
func respondError(writer http.ResponseWriter, status int, err string) {
	respondStatus(writer, status, &commandResult{Status: statusError, Problem: err})
}

// Logger middleware for the API.
func (s *GlueServer) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Logger.Debug("REST invocation", common.LogSystemToken, logSystem, common.LogURLToken, r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

// Authz middleware.
// Without configured users every request has full access.
func (s *GlueServer) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := s.anonymous
		if s.Settings.Security().IsEnabled() {
			var err error
			user, err = s.Settings.Security().GetUser(r.Header)
			if err != nil {
				s.Logger.Warn("Unauthorized access attempt", common.LogSystemToken, logSystem,
					common.LogURLToken, r.RequestURI)
				respondUnAuth(w)

				return
			}
		}

		ctx := context.WithValue(r.Context(), ctxtUserName, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Gets current user out of context.
func getContextUser(request *http.Request) *providers.AuthenticatedUser {
	return request.Context().Value(ctxtUserName).(*providers.AuthenticatedUser)
}

// Builds idempotency cache key.
func idempotencyKey(usr *providers.AuthenticatedUser, lockID string, state string, key string) string {
	return fmt.Sprintf("%s/%s/%s/%s", usr.Username, lockID, state, key)
}
