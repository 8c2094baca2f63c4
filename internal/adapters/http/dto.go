package http

// DiceResponse is the JSON shape returned by GET /v1/dice.
type DiceResponse struct {
	Roll   float64  `json:"roll"`
	Scaled int      `json:"scaled"`
	Meta   MetaResp `json:"meta"`
}

// MinesResponse is the JSON shape returned by GET /v1/mines.
type MinesResponse struct {
	Slots     int      `json:"slots"`
	Positions []int    `json:"positions"`
	Meta      MetaResp `json:"meta"`
}

// ShoeResponse is the JSON shape returned by GET /v1/shoe.
type ShoeResponse struct {
	Deck  string   `json:"deck"`
	Cards []string `json:"cards"`
	Meta  MetaResp `json:"meta"`
}

// BoxingResponse is the JSON shape returned by GET /v1/boxing.
type BoxingResponse struct {
	Rounds []HitRoundResp `json:"rounds"`
	Meta   MetaResp       `json:"meta"`
}

type HitRoundResp struct {
	Turn    int `json:"turn"`
	Player1 int `json:"player1"`
	Player2 int `json:"player2"`
}

// FlowersResponse is the JSON shape returned by GET /v1/flowers.
type FlowersResponse struct {
	Player1 []string `json:"player1"`
	Player2 []string `json:"player2"`
	Meta    MetaResp `json:"meta"`
}

// SeedResponse is the JSON shape returned by POST /v1/seeds. The plain
// seed is for the operator; only the hash may be shown to players
// before the round.
type SeedResponse struct {
	Seed string   `json:"seed"`
	Hash string   `json:"hash"`
	Meta MetaResp `json:"meta"`
}

type MetaResp struct {
	RequestID string `json:"request_id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
