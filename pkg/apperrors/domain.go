package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors and predefined domain errors.

func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Auth & user status ---

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrUserSuspended = New(
	CodeForbidden,
	"auth",
	"Your account has been suspended",
	http.StatusForbidden,
)

// --- Jobs ---

var ErrJobNotOpen = New(
	CodeInvalidStatus,
	"job",
	"This job is not accepting applications",
	http.StatusBadRequest,
)

var ErrInvalidJobStatus = New(
	CodeInvalidStatus,
	"job",
	"Operation not allowed for the current job status",
	http.StatusConflict,
)

// --- Applications ---

var ErrAlreadyApplied = New(
	CodeAlreadyExists,
	"application",
	"You have already applied to this job",
	http.StatusBadRequest,
)

var ErrProfileIncomplete = New(
	CodeInvalidOperation,
	"application",
	"Please complete your student profile before applying",
	http.StatusBadRequest,
)

var ErrResumeRequired = New(
	CodeInvalidOperation,
	"application",
	"Please upload a resume before applying",
	http.StatusBadRequest,
)

var ErrApplicationNotPending = New(
	CodeInvalidStatus,
	"application",
	"Only pending applications can be withdrawn",
	http.StatusBadRequest,
)

// --- Companies ---

var ErrCompanyNameTaken = New(
	CodeAlreadyExists,
	"company",
	"A company with this name already exists",
	http.StatusConflict,
)

var ErrCompanyBlacklisted = New(
	CodeForbidden,
	"company",
	"This company has been blacklisted",
	http.StatusForbidden,
)

// --- Uploads & files ---

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)
