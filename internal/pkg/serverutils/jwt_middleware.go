package serverutils

import (
	"strings"

	"antrian-truk-be/internal/dto"
	"antrian-truk-be/internal/entity"
	"antrian-truk-be/internal/pkg/apperror"
	"antrian-truk-be/internal/pkg/tokenstore"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	LocalsUserId   = "user_id"
	LocalsRole     = "role"
	LocalsUsername = "username"
	LocalsName     = "name"
	LocalsToken    = "token"
)

// JwtMiddleware authenticates the Bearer token, rejects denylisted tokens and
// stores the claims in the request locals.
func JwtMiddleware(secret string, denylist tokenstore.TokenDenylist) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return apperror.Unauthorized("Token tidak ditemukan")
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return apperror.Unauthorized("Token tidak valid")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return apperror.Unauthorized("Token tidak valid")
		}

		if denylist != nil {
			denied, err := denylist.IsDenied(ctx.UserContext(), tokenStr)
			if err != nil {
				return err
			}
			if denied {
				return apperror.Unauthorized("Sesi sudah berakhir")
			}
		}

		ctx.Locals(LocalsUserId, stringClaim(claims, "sub"))
		ctx.Locals(LocalsRole, stringClaim(claims, "role"))
		ctx.Locals(LocalsUsername, stringClaim(claims, "username"))
		ctx.Locals(LocalsName, stringClaim(claims, "name"))
		ctx.Locals(LocalsToken, tokenStr)
		return ctx.Next()
	}
}

// RoleAuth allows only the listed roles past. Runs after JwtMiddleware.
func RoleAuth(roles ...entity.AdminRole) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role, _ := ctx.Locals(LocalsRole).(string)
		for _, allowed := range roles {
			if strings.EqualFold(role, string(allowed)) {
				return ctx.Next()
			}
		}
		return apperror.Forbidden("Anda tidak punya akses ke resource ini")
	}
}

// ActorFromLocals resolves the audit actor from the authenticated claims,
// falling back to the system sentinel on unauthenticated routes.
func ActorFromLocals(ctx *fiber.Ctx) dto.Actor {
	actor := dto.Actor{Name: entity.SystemActorName}
	if name, _ := ctx.Locals(LocalsName).(string); name != "" {
		actor.Name = name
	}
	if raw, _ := ctx.Locals(LocalsUserId).(string); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			actor.Id = &id
		}
	}
	return actor
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
