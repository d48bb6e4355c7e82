package model

// SumResult is the outcome of adding two leniently parsed numbers.
type SumResult struct {
	A     float64 `json:"a"`
	B     float64 `json:"b"`
	Total float64 `json:"total"`
}

// Prize is the lotto tier a ticket lands in, keyed by how many winning numbers it missed.
type Prize int

const (
	PrizeJackpot Prize = iota
	PrizeCash
	PrizeSoda
	PrizeNone
)

var prizeMessages = map[Prize]string{
	PrizeJackpot: "You are amazing!  You win!!",
	PrizeCash:    "Congrats. You win $1000!",
	PrizeSoda:    "Congrats, you win a free coca-cola",
	PrizeNone:    "Sorry, you lose",
}

var prizeNames = map[Prize]string{
	PrizeJackpot: "jackpot",
	PrizeCash:    "cash",
	PrizeSoda:    "soda",
	PrizeNone:    "none",
}

// PrizeForMissed maps the number of missed winning numbers to a prize tier.
func PrizeForMissed(missed int) Prize {
	switch missed {
	case 0:
		return PrizeJackpot
	case 1:
		return PrizeCash
	case 2:
		return PrizeSoda
	default:
		return PrizeNone
	}
}

// Message is the response text shown to the player.
func (p Prize) Message() string {
	return prizeMessages[p]
}

// String returns a short label, used for metrics.
func (p Prize) String() string {
	if n, ok := prizeNames[p]; ok {
		return n
	}
	return "unknown"
}

// LottoResult describes one ticket checked against one draw.
// It lives only for the duration of a request.
type LottoResult struct {
	Guesses []int `json:"guesses"`
	Winning []int `json:"winning"`
	Missed  int   `json:"missed"`
	Prize   Prize `json:"-"`
}
