package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"NoteHub/internal/cli/api"
	"NoteHub/internal/config"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Создать учётную запись и сохранить токен" }
func (registerCmd) Usage() string       { return "register <name> <email> <password>" }

func (registerCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/auth/register"
	req := RegisterRequest{Name: args[0], Email: args[1], Password: args[2]}
	resp, body, err := api.PostJSON(endpoint, req, "")
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusCreated {
		if err := api.PersistAuthFromBody(body); err != nil {
			return fmt.Errorf("saving auth: %w", err)
		}
		fmt.Fprintln(Out, "Registered successfully")
		return nil
	}
	if resp.StatusCode == http.StatusBadRequest {
		return errors.New(strings.TrimSpace(string(body)))
	}
	return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
}

func init() { RegisterCmd(registerCmd{}) }
