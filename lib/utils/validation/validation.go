package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"job-board-backend/lib/apperr"
)

var (
	skillsRe  = regexp.MustCompile(`^[а-яА-ЯёЁa-zA-Z0-9,. ]*$`)
	phoneRuRe = regexp.MustCompile(`^(\+7|8)\d{10}$`)
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// в сообщениях участвуют имена полей из json тегов
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = validate.RegisterValidation("skills", func(fl validator.FieldLevel) bool {
		return skillsRe.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("phone_ru", func(fl validator.FieldLevel) bool {
		return phoneRuRe.MatchString(fl.Field().String())
	})
}

// CheckStruct проверяет структуру по validate тегам и возвращает
// ошибку с сообщениями по полям
func CheckStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	result := apperr.ValidationError{Fields: map[string]string{}}
	for _, fe := range vErrs {
		result.Fields[fe.Field()] = fieldMessage(fe)
	}
	return &result
}

// NormalizePhone приводит номер к виду +7XXXXXXXXXX
func NormalizePhone(phone string) string {
	if strings.HasPrefix(phone, "8") {
		return "+7" + phone[1:]
	}
	return phone
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "обязательное поле"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("не менее %s символов", fe.Param())
		}
		return fmt.Sprintf("значение не менее %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("не более %s символов", fe.Param())
		}
		return fmt.Sprintf("значение не более %s", fe.Param())
	case "email":
		return "введите корректный email"
	case "url":
		return "введите корректную ссылку"
	case "skills":
		return "Допускаются только БУКВЫ, ЦИФРЫ, ТОЧКИ, ЗАПЯТЫЕ и ПРОБЕЛЫ"
	case "phone_ru":
		return "Введите корректный номер телефона. Пример: +79991115533"
	}
	return "недопустимое значение"
}
