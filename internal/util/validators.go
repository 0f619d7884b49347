package util

import (
	"errors"
	"strings"

	"awareness_backend/internal/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var educationLevels = map[string]bool{
	model.EducationOL:     true,
	model.EducationAL:     true,
	model.EducationHND:    true,
	model.EducationDegree: true,
}

func validEducation(fl validator.FieldLevel) bool {
	return educationLevels[fl.Field().String()]
}

func validProficiency(fl validator.FieldLevel) bool {
	switch strings.ToLower(strings.TrimSpace(fl.Field().String())) {
	case "school", "high", "high education":
		return true
	}
	return false
}

// RegisterValidators 注册 education 与 proficiency 校验标签到 gin 的校验引擎
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	return RegisterValidatorsOn(v)
}

func RegisterValidatorsOn(v *validator.Validate) error {
	if err := v.RegisterValidation("education", validEducation); err != nil {
		return err
	}
	return v.RegisterValidation("proficiency", validProficiency)
}

// ValidationMessage 将校验错误转为可读的提示
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Namespace()+" failed on '"+fe.Tag()+"'")
	}
	return strings.Join(msgs, "; ")
}
