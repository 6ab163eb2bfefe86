package service

import (
	"github.com/vaultpass/passcheck-go/internal/crypto"
	"github.com/vaultpass/passcheck-go/internal/model"
)

// GeneratorService handles password and passphrase generation.
type GeneratorService struct {
	res *Resources
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(res *Resources) *GeneratorService {
	return &GeneratorService{res: res}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:  req.Length,
		Shuffle: req.Shuffle,
	}

	if opts.Length == 0 {
		opts.Length = crypto.DefaultLength
	}

	password, err := crypto.GeneratePassword(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
	}, nil
}

// Passphrase produces a passphrase from the shared word list. Only this
// operation depends on the word list being available.
func (s *GeneratorService) Passphrase(req model.PassphraseRequest) (model.PassphraseResponse, error) {
	count := req.WordCount
	if count == 0 {
		count = crypto.DefaultWordCount
	}
	if count < crypto.MinWords || count > crypto.MaxWords {
		return model.PassphraseResponse{}, crypto.ErrWordCountOutOfRange
	}

	words, err := s.res.Words.Words()
	if err != nil {
		return model.PassphraseResponse{}, err
	}

	phrase, err := crypto.GeneratePassphrase(words, count)
	if err != nil {
		return model.PassphraseResponse{}, err
	}

	return model.PassphraseResponse{
		Passphrase: phrase,
		WordCount:  count,
		Separator:  crypto.PassphraseSeparator,
	}, nil
}
