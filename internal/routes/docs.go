package routes

import "github.com/gofiber/fiber/v2"

type docsEndpoint struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Auth        bool   `json:"auth"`
	Description string `json:"description"`
}

var docsEndpoints = []docsEndpoint{
	{Method: "POST", Path: "/api/auth/register", Auth: false, Description: "Create an account and receive a JWT"},
	{Method: "POST", Path: "/api/auth/login", Auth: false, Description: "Exchange credentials for a JWT"},
	{Method: "GET", Path: "/api/auth/me", Auth: true, Description: "Current user plus morphotype questionnaire status"},
	{Method: "GET", Path: "/api/v1/morphotype", Auth: true, Description: "Fetch the stored morphotype profile"},
	{Method: "PUT", Path: "/api/v1/morphotype", Auth: true, Description: "Save questionnaire answers, full overwrite"},
	{Method: "GET", Path: "/api/v1/exercises", Auth: true, Description: "Paginated catalog, scored when a profile exists"},
	{Method: "GET", Path: "/api/v1/exercises/:id/score", Auth: true, Description: "Suitability score and advice for one exercise"},
	{Method: "POST", Path: "/api/v1/programs/generate", Auth: true, Description: "Generate a program from goal, approach, split and days"},
	{Method: "POST", Path: "/api/v1/programs/save", Auth: true, Description: "Persist a generated program as workout templates"},
	{Method: "GET", Path: "/api/v1/programs/templates", Auth: true, Description: "List saved workout templates"},
}

func docsHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":      "MorphoFit API",
		"endpoints": docsEndpoints,
	})
}
