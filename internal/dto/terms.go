package dto

type CreateTermsRequest struct {
	Version  string `json:"version" validate:"required,max=50"`
	TermType string `json:"term_type" validate:"required,oneof=terms interior_regulation"`
	Content  string `json:"content" validate:"required"`
}
