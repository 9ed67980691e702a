// Package commands implements the filmctl command dispatcher.
package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"filmapp/internal/models"
	"filmapp/internal/services"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

var ErrUsage = errors.New("usage error")

const usage = `Usage:
  filmctl films [-q text] [-sort title|rating|year] [-fav]
  filmctl fav add <id>
  filmctl fav rm <id>
  filmctl fav ls
  filmctl fav count
  filmctl fav clear
`

type Command struct {
	Name string
	Args []string
}

type Handler struct {
	catalog   *services.CatalogService
	favorites *services.FavoritesService
	logger    *logrus.Logger
	out       io.Writer

	title  *color.Color
	muted  *color.Color
	good   *color.Color
	notice *color.Color
}

func NewHandler(catalog *services.CatalogService, favorites *services.FavoritesService, logger *logrus.Logger, out io.Writer) *Handler {
	return &Handler{
		catalog:   catalog,
		favorites: favorites,
		logger:    logger,
		out:       out,
		title:     color.New(color.FgCyan, color.Bold),
		muted:     color.New(color.FgHiBlack),
		good:      color.New(color.FgGreen),
		notice:    color.New(color.FgYellow),
	}
}

func Parse(args []string) Command {
	if len(args) == 0 {
		return Command{}
	}
	return Command{Name: args[0], Args: args[1:]}
}

// Process runs one command. ErrUsage is returned for unknown commands or bad arguments.
func (h *Handler) Process(ctx context.Context, args []string) error {
	cmd := Parse(args)
	h.logger.WithFields(logrus.Fields{
		"command": cmd.Name,
		"args":    cmd.Args,
	}).Debug("Processing command")

	switch cmd.Name {
	case "films":
		return h.handleFilms(ctx, cmd)
	case "fav":
		return h.handleFavorites(ctx, cmd)
	case "help", "-h", "--help":
		fmt.Fprint(h.out, usage)
		return nil
	default:
		fmt.Fprint(h.out, usage)
		return ErrUsage
	}
}

func (h *Handler) handleFilms(ctx context.Context, cmd Command) error {
	fs := flag.NewFlagSet("films", flag.ContinueOnError)
	fs.SetOutput(h.out)
	query := fs.String("q", "", "case-insensitive title or category search")
	sortKey := fs.String("sort", "", "title, rating or year")
	favOnly := fs.Bool("fav", false, "only favorites")
	if err := fs.Parse(cmd.Args); err != nil {
		return ErrUsage
	}

	key, _ := models.ParseSortKey(*sortKey)
	params := services.QueryParams{Text: *query, Sort: key, FavoritesOnly: *favOnly}
	if *favOnly {
		params.FavoriteIDs = h.favorites.List(ctx)
	}

	films := services.Query(h.catalog.AllFilms(), params)
	h.printFilms(ctx, films)
	return nil
}

func (h *Handler) handleFavorites(ctx context.Context, cmd Command) error {
	if len(cmd.Args) == 0 {
		fmt.Fprint(h.out, usage)
		return ErrUsage
	}

	switch sub := cmd.Args[0]; sub {
	case "add", "rm":
		if len(cmd.Args) != 2 {
			return ErrUsage
		}
		id, err := strconv.Atoi(cmd.Args[1])
		if err != nil {
			return fmt.Errorf("%w: invalid film id %q", ErrUsage, cmd.Args[1])
		}
		return h.updateFavorite(ctx, sub, id)

	case "ls":
		h.printFilms(ctx, h.favorites.Films(ctx, h.catalog.AllFilms()))
		return nil

	case "count":
		fmt.Fprintln(h.out, h.favorites.Count(ctx))
		return nil

	case "clear":
		had := h.favorites.Count(ctx)
		if err := h.favorites.Clear(ctx); err != nil {
			return err
		}
		if had == 0 {
			h.muted.Fprintln(h.out, "No favorites yet")
			return nil
		}
		h.notice.Fprintln(h.out, "All favorites cleared")
		return nil

	default:
		fmt.Fprint(h.out, usage)
		return ErrUsage
	}
}

func (h *Handler) updateFavorite(ctx context.Context, action string, id int) error {
	name := "#" + strconv.Itoa(id)
	if film, ok := h.catalog.FilmByID(id); ok {
		name = film.Title
	}

	if action == "add" {
		if err := h.favorites.Add(ctx, id); err != nil {
			return err
		}
		h.good.Fprintf(h.out, "%s added to favorites\n", name)
		return nil
	}

	if err := h.favorites.Remove(ctx, id); err != nil {
		return err
	}
	h.notice.Fprintf(h.out, "%s removed from favorites\n", name)
	return nil
}

func (h *Handler) printFilms(ctx context.Context, films []models.Film) {
	if len(films) == 0 {
		h.muted.Fprintln(h.out, "No films found")
		return
	}

	for _, f := range films {
		star := " "
		if h.favorites.IsFavorite(ctx, f.ID) {
			star = "*"
		}
		h.title.Fprintf(h.out, "%s %4d  %s", star, f.ID, f.Title)
		fmt.Fprintf(h.out, "  %s\n", formatMeta(f))
	}
	h.muted.Fprintf(h.out, "%d film(s)\n", len(films))
}

func formatMeta(f models.Film) string {
	parts := []string{f.Category, fmt.Sprintf("%.1f", f.Rating)}
	if f.Year > 0 {
		parts = append(parts, strconv.Itoa(f.Year))
	}
	if f.Duration != "" {
		parts = append(parts, f.Duration)
	}
	return strings.Join(parts, " | ")
}
