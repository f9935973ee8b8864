package middleware

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/ivoirestore/backend/internal/domain/shared"
)

// MessageInvalidData heads every validation error response.
const MessageInvalidData = "Données invalides."

// SetupValidator makes validation errors report JSON field names.
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})
	}
}

// fieldMessages overrides the generic message for a field and tag pair.
var fieldMessages = map[string]string{
	"name.required":             "Le nom est obligatoire",
	"phone.required":            "Le numéro de téléphone est obligatoire",
	"address.required":          "L'adresse est obligatoire",
	"price.required":            "Le prix doit être un nombre positif",
	"boutique.required":         "La boutique est obligatoire",
	"stock.min":                 "Le stock doit être un entier positif",
	"text.required":             "Le commentaire est obligatoire",
	"rating.required":           "La note doit être entre 1 et 5",
	"rating.min":                "La note doit être entre 1 et 5",
	"rating.max":                "La note doit être entre 1 et 5",
	"customerName.required":     "Le nom du client est obligatoire",
	"customerPhone.required":    "Le téléphone du client est obligatoire",
	"customerLocation.required": "La localisation du client est obligatoire",
	"product.required":          "Le produit est obligatoire",
	"quantity.min":              "La quantité doit être au moins 1",
	"email.required":            "Email invalide",
	"email.email":               "Email invalide",
	"password.required":         "Le mot de passe est obligatoire",
	"password.min":              "Le mot de passe doit contenir au moins 8 caractères",
	"role.oneof":                "Rôle invalide. Valeurs: admin, super_admin",
}

// ValidationDetails converts binding errors into per-field details. ok is false when
// err is not a validator error (malformed JSON for instance).
func ValidationDetails(err error) (details []shared.FieldError, ok bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}
	for _, e := range validationErrors {
		details = append(details, shared.FieldError{
			Field:   e.Field(),
			Message: getValidationMessage(e),
		})
	}
	return details, true
}

// getValidationMessage returns a French validation message
func getValidationMessage(e validator.FieldError) string {
	if msg, ok := fieldMessages[e.Field()+"."+e.Tag()]; ok {
		return msg
	}
	switch e.Tag() {
	case "required":
		return "Ce champ est obligatoire"
	case "email":
		return "Email invalide"
	case "min":
		if e.Kind() == reflect.String {
			return "Doit contenir au moins " + e.Param() + " caractères"
		}
		return "Doit être au moins " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "Ne doit pas dépasser " + e.Param() + " caractères"
		}
		return "Ne doit pas dépasser " + e.Param()
	case "oneof":
		return "Valeurs acceptées : " + strings.ReplaceAll(e.Param(), " ", ", ")
	case "url":
		return "URL invalide"
	case "uuid":
		return "Identifiant invalide"
	default:
		return "Valeur invalide"
	}
}
