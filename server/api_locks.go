package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-home-io/gluehome/systems/lock"
	"github.com/gorilla/mux"
	"github.com/patrickmn/go-cache"
)

// Replayable outcome of a command.
type outcome struct {
	done chan struct{}
	code int
	body []byte
}

// Returns all locks available for the user.
func (s *GlueServer) getLocks(writer http.ResponseWriter, request *http.Request) {
	usr := getContextUser(request)
	views := make([]*lock.View, 0)
	for _, v := range s.registry.Accessories() {
		if usr.LockGet(v.ID()) {
			views = append(views, v.View())
		}
	}

	respond(writer, views)
}

// Returns a single lock if it's allowed for the user.
func (s *GlueServer) getLock(writer http.ResponseWriter, request *http.Request) {
	id := mux.Vars(request)[string(urlLockID)]
	a, ok := s.registry.Accessory(id)
	if !ok || !getContextUser(request).LockGet(id) {
		respondError(writer, http.StatusNotFound, (&ErrUnknownLock{ID: id}).Error())
		return
	}

	respond(writer, a.View())
}

// Executes lock command if it's allowed for the user.
// Requests with the same idempotency key replay the first outcome.
func (s *GlueServer) lockCommand(writer http.ResponseWriter, request *http.Request) {
	vars := mux.Vars(request)
	usr := getContextUser(request)
	id, state := vars[string(urlLockID)], vars[string(urlState)]

	key := request.Header.Get(headerIdempotencyKey)
	if "" == key {
		res := s.commandSetState(request.Context(), usr, id, state)
		respondStatus(writer, res.code, res)
		return
	}

	cacheKey := idempotencyKey(usr, id, state, key)
	o := &outcome{done: make(chan struct{})}
	if err := s.outcomes.Add(cacheKey, o, cache.DefaultExpiration); err != nil {
		if prev, ok := s.outcomes.Get(cacheKey); ok {
			s.replay(writer, request, prev.(*outcome))
			return
		}

		s.outcomes.Set(cacheKey, o, cache.DefaultExpiration)
	}

	res := s.commandSetState(request.Context(), usr, id, state)
	o.code = res.code
	o.body, _ = json.Marshal(res) // nolint: errcheck
	close(o.done)

	if lock.KindCancelled == res.Kind {
		s.outcomes.Delete(cacheKey)
	}

	respondRaw(writer, o.code, o.body)
}

// Waits for the first outcome and responds with it.
func (s *GlueServer) replay(writer http.ResponseWriter, request *http.Request, o *outcome) {
	select {
	case <-o.done:
		writer.Header().Set("Idempotent-Replayed", "true")
		respondRaw(writer, o.code, o.body)
	case <-request.Context().Done():
	}
}
