package commands

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"strings"

	"NoteHub/internal/cli/api"
	"NoteHub/internal/config"
)

type noteEditCmd struct{}

func (noteEditCmd) Name() string        { return "note-edit" }
func (noteEditCmd) Description() string { return "Изменить заметку (только переданные поля)" }
func (noteEditCmd) Usage() string {
	return "note-edit <id> [--title <t>] [--content <c>] [--image <path>]"
}

func (noteEditCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	id := args[0]

	fs := flag.NewFlagSet("note-edit", flag.ContinueOnError)
	title := fs.String("title", "", "новый заголовок")
	content := fs.String("content", "", "новый текст")
	image := fs.String("image", "", "путь к новой картинке")
	if err := fs.Parse(args[1:]); err != nil {
		return ErrUsage
	}

	fields := map[string]string{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			fields["title"] = *title
		case "content":
			fields["content"] = *content
		}
	})
	if len(fields) == 0 && *image == "" {
		return ErrUsage
	}

	token, err := api.LoadToken()
	if err != nil {
		return fmt.Errorf("not logged in: %w", err)
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/" + id
	resp, body, err := api.PostMultipart(http.MethodPut, endpoint, fields, *image, token)
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Fprintln(Out, "Note updated")
		return nil
	case http.StatusUnauthorized:
		return fmt.Errorf("session expired, login again")
	case http.StatusForbidden:
		return fmt.Errorf("note not found")
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
}

func init() { RegisterCmd(noteEditCmd{}) }
