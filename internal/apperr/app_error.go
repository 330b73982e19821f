package apperr

import "github.com/bilgiteknoresmi-prog/3d-baski-studio/pkg/zerror"

const (
	ValidationErrorCode      = "VALIDATION_FAILED"
	ProductNotFoundCode      = "PRODUCT_NOT_FOUND"
	InvalidCredentialsCode   = "INVALID_CREDENTIALS"
	LoginDisabledCode        = "LOGIN_DISABLED"
	TooManyLoginAttemptsCode = "TOO_MANY_LOGIN_ATTEMPTS"
)

// Messages are shown to end users as-is, hence Turkish.
var (
	ValidationErr           = zerror.NewValidationFailed(ValidationErrorCode, "Lütfen tüm alanları doldur.")
	ProductNotFoundErr      = zerror.NewNotFound(ProductNotFoundCode, "Ürün bulunamadı.")
	InvalidCredentialsErr   = zerror.NewUnauthorized(InvalidCredentialsCode, "Kullanıcı adı veya şifre yanlış.")
	LoginDisabledErr        = zerror.NewUnauthorized(LoginDisabledCode, "Kullanıcı adı veya şifre yanlış.")
	TooManyLoginAttemptsErr = zerror.NewTooManyRequests(TooManyLoginAttemptsCode, "Çok fazla deneme. Lütfen biraz sonra tekrar dene.")
)
