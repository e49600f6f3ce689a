package cqrs

type LoginCommand struct {
	Username string
	Password string
}

type DepositCommand struct {
	Username string
	Amount   float64
}

type WithdrawCommand struct {
	Username string
	Amount   float64
}
