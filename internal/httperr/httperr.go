package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"msg"`
}

type mapping struct {
	status  int
	message string
}

var codes = map[string]mapping{
	CodeBadRequest:          {http.StatusBadRequest, "Bad request"},
	CodeInvalidDateFormat:   {http.StatusBadRequest, "Invalid date format"},
	CodeCenterNotFound:      {http.StatusBadRequest, "Center not found"},
	CodeSlotTaken:           {http.StatusConflict, "Date and hour already taken"},
	CodeAppointmentNotFound: {http.StatusNotFound, "Date not found"},
	CodeUnauthorized:        {http.StatusForbidden, "Unauthorized"},
	CodeUnauthenticated:     {http.StatusUnauthorized, "Missing or invalid token"},
	CodeBadCredentials:      {http.StatusUnauthorized, "Bad username or password"},
	CodeUserExists:          {http.StatusConflict, "User already exists"},
	CodeUserNotFound:        {http.StatusNotFound, "User not found"},
	CodeInternal:            {http.StatusInternalServerError, "Internal server error"},
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

// Status reports the HTTP status used for a business code.
func Status(code string) int {
	if m, ok := codes[code]; ok {
		return m.status
	}
	return http.StatusInternalServerError
}

// Respond writes err as a JSON error. Unknown errors become a 500 and are
// attached to the gin context so the request logger records them.
func Respond(c *gin.Context, err error) {
	code, ok := CodeOf(err)
	if !ok {
		_ = c.Error(err)
		code = CodeInternal
	}
	m, known := codes[code]
	if !known {
		m = codes[CodeInternal]
	}
	Write(c, m.status, code, m.message)
}

// Abort is Respond for middleware: the handler chain stops here.
func Abort(c *gin.Context, code string) {
	m := codes[code]
	c.AbortWithStatusJSON(m.status, HTTPError{Code: code, Message: m.message})
}

func BadRequest(c *gin.Context) {
	Respond(c, ErrBusiness(CodeBadRequest))
}
