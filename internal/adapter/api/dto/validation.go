package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/gordosalgados/gordo-salgados/internal/domain/admin"
	"github.com/gordosalgados/gordo-salgados/internal/domain/product"
)

// RegisterValidators registra no validador do gin as regras do domínio
// e passa a usar os nomes JSON dos campos nas mensagens
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("validador do gin não é go-playground/validator")
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return strings.ToLower(fld.Name)
	})

	if err := v.RegisterValidation("admin_role", func(fl validator.FieldLevel) bool {
		return admin.Role(fl.Field().String()).Valid()
	}); err != nil {
		return err
	}

	return v.RegisterValidation("product_status", func(fl validator.FieldLevel) bool {
		return product.Status(fl.Field().String()).Valid()
	})
}

// ValidationMessage traduz um erro de binding para uma mensagem legível
func ValidationMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return "JSON inválido"
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		field := fe.Field()

		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s é obrigatório", field)
		case "email":
			message = fmt.Sprintf("%s deve ser um email válido", field)
		case "min":
			message = fmt.Sprintf("%s deve ter pelo menos %s caracteres", field, fe.Param())
		case "max":
			message = fmt.Sprintf("%s deve ter no máximo %s caracteres", field, fe.Param())
		case "gt":
			message = fmt.Sprintf("%s deve ser maior que %s", field, fe.Param())
		case "admin_role":
			message = fmt.Sprintf("%s deve ser super_admin, editor ou viewer", field)
		case "product_status":
			message = fmt.Sprintf("%s deve ser active ou inactive", field)
		default:
			message = fmt.Sprintf("%s falhou na validação %s", field, fe.Tag())
		}
		messages = append(messages, message)
	}

	return strings.Join(messages, "; ")
}
