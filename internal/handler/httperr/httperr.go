package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vending-server/internal/domain/vending"
	"vending-server/internal/pkg/errs"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Kind    string `json:"kind,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Kind = errs.Kind(err)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps the error taxonomy to an HTTP status.
func StatusOf(err error) int {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrStateConflict):
		return http.StatusConflict
	case errs.Is(err, errs.ErrResourceLimit):
		return http.StatusUnprocessableEntity
	case errs.Is(err, errs.ErrPersistence):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

type PurchaseDetail struct {
	Reason    string `json:"reason"`
	CartIndex int    `json:"cart_index"`
	Amount    int    `json:"amount"`
}

// AbortWithDomainError picks the status from err and, for rejected
// purchases, reports the reason code and the limiting line.
func AbortWithDomainError(c *gin.Context, err error, msg string) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		msg = "Internal error"
	}
	var detail any
	var perr *vending.PurchaseError
	if errs.As(err, &perr) {
		detail = PurchaseDetail{Reason: perr.Reason.String(), CartIndex: perr.CartIndex, Amount: perr.Amount}
	}
	AbortWithError(c, status, err, msg, detail)
}
