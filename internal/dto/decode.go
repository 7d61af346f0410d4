package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/JamesR367/DigiDar/pkg/response"
)

// ErrBodyTooLarge 请求体超过 BodyLimit
var ErrBodyTooLarge = errors.New("请求体过大")

// ValidationError 请求体解码或校验失败
type ValidationError struct {
	Fields []response.FieldError
	cause  error
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "参数校验失败"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "参数校验失败: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return e.cause }

func init() {
	// 校验错误使用 json 字段名
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	}
}

// DecodeJSON 将请求体解码为 T 并按 binding 标签校验。
// 失败时返回 *ValidationError 或 ErrBodyTooLarge。
func DecodeJSON[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, toDecodeError(err)
	}
	return &req, nil
}

func toDecodeError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return ErrBodyTooLarge
	}

	var (
		verrs     validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		timeErr   *TimeParseError
	)
	switch {
	case errors.As(err, &verrs):
		fields := make([]response.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, response.FieldError{
				Field:   fieldPath(fe),
				Message: describeTag(fe),
			})
		}
		return &ValidationError{Fields: fields, cause: err}
	case errors.As(err, &typeErr):
		return &ValidationError{
			Fields: []response.FieldError{{Field: typeErr.Field, Message: "类型错误，期望 " + typeErr.Type.String()}},
			cause:  err,
		}
	case errors.As(err, &timeErr):
		return &ValidationError{
			Fields: []response.FieldError{{Message: timeErr.Error()}},
			cause:  err,
		}
	case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return &ValidationError{
			Fields: []response.FieldError{{Message: "请求体不是合法的 JSON"}},
			cause:  err,
		}
	default:
		return &ValidationError{
			Fields: []response.FieldError{{Message: err.Error()}},
			cause:  err,
		}
	}
}

// fieldPath 去掉顶层结构体名，保留 json 路径（如 days_of_week[0]）
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "不能为空"
	case "max":
		return fmt.Sprintf("不能超过 %s", fe.Param())
	case "min":
		return fmt.Sprintf("不能小于 %s", fe.Param())
	case "unique":
		return "不能包含重复值"
	case "oneof":
		return fmt.Sprintf("必须是以下之一: %s", fe.Param())
	default:
		return fmt.Sprintf("校验失败: %s", fe.Tag())
	}
}
