package api

import (
	"github.com/gin-gonic/gin"

	"github.com/sankofahq/sankofa-ledger/internal/service"
	"github.com/sankofahq/sankofa-ledger/internal/transport/api/middlewares"
	"github.com/sankofahq/sankofa-ledger/internal/transport/api/tokens"
)

// getCurrentMember достает участника из claims, положенных auth-middleware.
func getCurrentMember(c *gin.Context) service.Member {
	value, ok := c.Get(middlewares.CurrentMemberKey)
	if !ok {
		return service.Member{}
	}
	claims, ok := value.(*tokens.MemberClaims)
	if !ok {
		return service.Member{}
	}
	return service.Member{
		ID:       claims.MemberID,
		Phone:    claims.Phone,
		FullName: claims.FullName,
	}
}
