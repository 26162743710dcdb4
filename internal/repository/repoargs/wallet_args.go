package repoargs

type EnsureMemberWallet struct {
	MemberID int64
	// Name отображаемое имя кошелька: полное имя участника либо его телефон.
	Name     string
	Currency string
}
