package service

import (
	"fmt"
	"math"

	"querydrills/internal/model"
)

// GreetingRequest holds the /greetings query.
type GreetingRequest struct {
	Name string `query:"name" validate:"required" errmsg:"Please provide a name"`
	Race string `query:"race" validate:"required" errmsg:"Please provide a race"`
}

// SumRequest holds the /sum query. Values stay raw so they can be parsed leniently.
type SumRequest struct {
	A string `query:"a" validate:"required" errmsg:"a is required"`
	B string `query:"b" validate:"required" errmsg:"b is required"`
}

// CipherRequest holds the /cipher query.
type CipherRequest struct {
	Text  string `query:"text" validate:"required" errmsg:"text is required"`
	Shift string `query:"shift" validate:"required" errmsg:"shift is required"`
}

// LottoRequest holds the /lotto query. IsArray tells whether the caller sent numbers
// as a list; a single value is not accepted.
type LottoRequest struct {
	Numbers []string
	IsArray bool
}

// PrizeRecorder is notified of every lotto outcome.
type PrizeRecorder interface {
	Record(p model.Prize)
}

// DrillService groups the stateless transforms behind the HTTP routes.
type DrillService interface {
	// Greet builds the kingdom greeting for a name and race.
	Greet(req GreetingRequest) (string, error)

	// Sum parses a and b leniently and adds them.
	Sum(req SumRequest) (*model.SumResult, error)

	// Cipher applies a Caesar shift to the upper-cased text.
	Cipher(req CipherRequest) (string, error)

	// Lotto checks six guesses against a fresh draw.
	Lotto(req LottoRequest) (*model.LottoResult, error)
}

type drillService struct {
	drawer   Drawer
	recorder PrizeRecorder
}

// Option configures a DrillService.
type Option func(*drillService)

// WithPrizeRecorder registers a recorder for lotto outcomes.
func WithPrizeRecorder(r PrizeRecorder) Option {
	return func(s *drillService) { s.recorder = r }
}

// NewDrillService constructs a DrillService drawing lotto numbers from drawer.
// A nil drawer falls back to a randomly seeded one.
func NewDrillService(drawer Drawer, opts ...Option) DrillService {
	if drawer == nil {
		drawer = NewRandDrawer(nil)
	}
	s := &drillService{drawer: drawer}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *drillService) Greet(req GreetingRequest) (string, error) {
	if err := validateRequest(req); err != nil {
		return "", err
	}
	return fmt.Sprintf("Greetings %s the %s, welcome to our kingdom.", req.Name, req.Race), nil
}

func (s *drillService) Sum(req SumRequest) (*model.SumResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	a := ParseFloatPrefix(req.A)
	b := ParseFloatPrefix(req.B)
	if math.IsNaN(a) {
		return nil, invalid("a must be a number")
	}
	if math.IsNaN(b) {
		return nil, invalid("b must be a number")
	}
	return &model.SumResult{A: a, B: b, Total: a + b}, nil
}

// SumMessage renders a SumResult as response text.
func SumMessage(r *model.SumResult) string {
	return fmt.Sprintf("The sum of %s and %s is %s", FormatNumber(r.A), FormatNumber(r.B), FormatNumber(r.Total))
}

func (s *drillService) Cipher(req CipherRequest) (string, error) {
	if err := validateRequest(req); err != nil {
		return "", err
	}

	shift := ParseFloatPrefix(req.Shift)
	if math.IsNaN(shift) || math.IsInf(shift, 0) {
		return "", invalid("shift must be a number")
	}
	return Caesar(req.Text, shift), nil
}

func (s *drillService) Lotto(req LottoRequest) (*model.LottoResult, error) {
	if !req.IsArray {
		return nil, invalid("numbers must be an array")
	}

	guesses := filterGuesses(req.Numbers)
	if len(guesses) != LottoPicks {
		return nil, invalid(fmt.Sprintf("numbers must contain %d integers between 1 and %d", LottoPicks, LottoMax))
	}

	winning := s.drawer.Draw(LottoPicks, LottoMax)
	missed := countMissed(winning, guesses)
	res := &model.LottoResult{
		Guesses: guesses,
		Winning: winning,
		Missed:  missed,
		Prize:   model.PrizeForMissed(missed),
	}
	if s.recorder != nil {
		s.recorder.Record(res.Prize)
	}
	return res, nil
}
