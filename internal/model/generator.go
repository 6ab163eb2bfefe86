package model

// GenerateRequest represents a password generation request.
// A zero Length selects the default length.
type GenerateRequest struct {
	Length  int  `json:"length"`
	Shuffle bool `json:"shuffle"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}

// PassphraseRequest represents a passphrase generation request.
// A zero WordCount selects the default count.
type PassphraseRequest struct {
	WordCount int `json:"word_count"`
}

// PassphraseResponse represents a passphrase generation response.
type PassphraseResponse struct {
	Passphrase string `json:"passphrase"`
	WordCount  int    `json:"word_count"`
	Separator  string `json:"separator"`
}
