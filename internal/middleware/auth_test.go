package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/ReddyRohith-E/MeFit-sub000/pkg/utils"
)

const testSecret = "middleware-test-secret"

func buildApp(handler fiber.Handler, extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	chain := append([]fiber.Handler{AuthRequired(testSecret)}, extra...)
	chain = append(chain, handler)
	app.Get("/protected", chain...)
	return app
}

func echoLocals(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"user_id":        c.Locals("user_id"),
		"is_contributor": c.Locals("is_contributor"),
		"is_admin":       c.Locals("is_admin"),
	})
}

func TestAuthRequiredRejectsMissingHeader(t *testing.T) {
	app := buildApp(echoLocals)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthRequiredRejectsMalformedHeader(t *testing.T) {
	app := buildApp(echoLocals)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthRequiredRejectsBadToken(t *testing.T) {
	app := buildApp(echoLocals)

	token, err := utils.GenerateToken("7", false, false, "some-other-secret")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthRequiredAcceptsValidToken(t *testing.T) {
	app := buildApp(echoLocals)

	token, err := utils.GenerateToken("7", true, false, testSecret)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestContributorRequiredBlocksPlainUsers(t *testing.T) {
	app := buildApp(echoLocals, ContributorRequired())

	token, err := utils.GenerateToken("7", false, false, testSecret)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func TestContributorRequiredAdmitsAdmins(t *testing.T) {
	app := buildApp(echoLocals, ContributorRequired())

	token, err := utils.GenerateToken("7", false, true, testSecret)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected admins to pass the contributor gate, got %d", resp.StatusCode)
	}
}

func TestAdminRequiredBlocksContributors(t *testing.T) {
	app := buildApp(echoLocals, AdminRequired())

	token, err := utils.GenerateToken("7", true, false, testSecret)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}
