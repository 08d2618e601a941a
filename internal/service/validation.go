package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"studyhub_backend/internal/util"

	"github.com/go-playground/validator/v10"
)

// 请求 DTO 使用 binding 标签（与 gin 绑定一致），模型使用 validate 标签
var (
	bindingValidate = newValidator("binding")
	modelValidate   = newValidator("validate")
)

func newValidator(tag string) *validator.Validate {
	v := validator.New()
	v.SetTagName(tag)
	UseJSONFieldNames(v)
	return v
}

// UseJSONFieldNames 错误信息中的字段名使用 json 名称；gin 的绑定校验器也需要注册
func UseJSONFieldNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// fieldPath 去掉顶层结构体名，例如 "ScheduleForm.examDates[0].date" -> "examDates[0].date"
func fieldPath(fe validator.FieldError, prefix string) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	if prefix != "" {
		return prefix + "." + ns
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "datetime":
		return "must be in YYYY-MM-DD format"
	default:
		return "is invalid"
	}
}

// collectFieldErrors 把 validator 的错误并入 verr；非校验类错误原样返回
func collectFieldErrors(err error, prefix string, verr *util.ValidationError) error {
	if err == nil {
		return nil
	}
	var fes validator.ValidationErrors
	if !errors.As(err, &fes) {
		return err
	}
	for _, fe := range fes {
		verr.Add(fieldPath(fe, prefix), fieldMessage(fe))
	}
	return nil
}

// AsValidationError 供 controller 把 gin 绑定阶段的校验错误转成字段级错误
func AsValidationError(err error) *util.ValidationError {
	var verr *util.ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	var fes validator.ValidationErrors
	if errors.As(err, &fes) {
		verr = util.NewValidationError()
		_ = collectFieldErrors(fes, "", verr)
		return verr
	}
	return nil
}
