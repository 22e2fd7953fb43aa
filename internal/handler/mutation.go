package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/form"
	"github.com/iliyamo/fyyur/internal/repository"
	"github.com/iliyamo/fyyur/web"
)

// deleteResult is the body of every DELETE answer.
type deleteResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// mutationResult is the JSON answer to a create or edit submission.
type mutationResult struct {
	Success bool        `json:"success"`
	ID      uint64      `json:"id,omitempty"`
	Error   string      `json:"error,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
	Flashes []web.Flash `json:"flashes"`
}

func mutationJSON(c echo.Context, status int, id uint64, flashes []web.Flash) error {
	res := mutationResult{Success: status < http.StatusMultipleChoices, ID: id, Flashes: flashes}
	if res.Flashes == nil {
		res.Flashes = []web.Flash{}
	}
	if !res.Success && len(flashes) > 0 {
		res.Error = flashes[len(flashes)-1].Message
	}
	return c.JSON(status, res)
}

// invalid answers a submission that failed to decode or validate.  The
// form is rendered again with the submitted values, the messages and the
// same failure flash a store error would produce.  Nothing was written.
func (h *Handler) invalid(c echo.Context, op, name, msg, tmpl string, p web.Page, err error) error {
	msgs := form.Messages(err)
	entity, _, _ := strings.Cut(op, ".")
	logFailure(c, &repository.Failure{Op: op, Kind: repository.KindInvalid, Err: err}, entity, name)
	flash(c, "error", msg)
	if wantsJSON(c) {
		return c.JSON(http.StatusUnprocessableEntity, mutationResult{Error: msg, Errors: msgs, Flashes: takeFlashes(c)})
	}
	p.Errors = msgs
	return h.page(c, http.StatusUnprocessableEntity, tmpl, p)
}

// failed answers a create whose transaction was rolled back.
func (h *Handler) failed(c echo.Context, err error, msg string) error {
	flash(c, "error", msg)
	if wantsJSON(c) {
		return mutationJSON(c, failureStatus(err), 0, takeFlashes(c))
	}
	return h.page(c, http.StatusOK, "pages/home.html", web.Page{})
}

// listed answers a successful create.
func (h *Handler) listed(c echo.Context, id uint64, msg string) error {
	flash(c, "message", msg)
	if wantsJSON(c) {
		return mutationJSON(c, http.StatusCreated, id, takeFlashes(c))
	}
	return h.page(c, http.StatusOK, "pages/home.html", web.Page{})
}
