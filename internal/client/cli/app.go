package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/crystalpad/internal/client/editor"
	"github.com/dmitrijs2005/crystalpad/internal/client/i18n"
	"github.com/dmitrijs2005/crystalpad/internal/client/models"
	"github.com/dmitrijs2005/crystalpad/internal/client/services"
	"github.com/dmitrijs2005/crystalpad/internal/common"
	"github.com/dmitrijs2005/crystalpad/internal/logging"
	"golang.org/x/term"
)

type Screen string

const (
	ScreenList     Screen = "list"
	ScreenEditor   Screen = "editor"
	ScreenSettings Screen = "settings"
)

const timeLayout = "2006-01-02 15:04"

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

type App struct {
	notes    services.NoteService
	settings services.SettingsService
	tr       *i18n.Translator
	log      logging.Logger

	reader *bufio.Reader
	out    io.Writer
	prompt bool

	screen   Screen
	session  *editor.Session
	listing  <-chan []models.Note
	snapshot []models.Note
}

// NewApp builds the shell around the given services. The prompt is shown
// only when in is a terminal.
func NewApp(ns services.NoteService, ss services.SettingsService, tr *i18n.Translator,
	log logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		notes:    ns,
		settings: ss,
		tr:       tr,
		log:      log,
		reader:   bufio.NewReader(in),
		out:      out,
		screen:   ScreenList,
	}
	if f, ok := in.(*os.File); ok {
		a.prompt = isTerminal(int(f.Fd()))
	}
	return a
}

// Start subscribes to the note listing and the language preference. The
// subscriptions end with ctx.
func (a *App) Start(ctx context.Context) error {
	listing, err := a.notes.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch notes: %w", err)
	}
	a.listing = listing

	lang, err := a.settings.Observe(ctx, models.PreferenceLanguage)
	if err != nil {
		return fmt.Errorf("observe language: %w", err)
	}
	go a.tr.Follow(ctx, lang)

	return nil
}

// Run starts the app and blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	if err := a.Start(ctx); err != nil {
		return err
	}
	a.tr.OnChange(func(lang string) {
		a.log.Debug(ctx, "language switched", "lang", lang)
	})

	fmt.Fprintf(a.out, "crystalpad (type 'help' for commands)\n")
	runREPL(ctx, a, a.printPrompt, a.reader)
	return nil
}

func (a *App) printPrompt() {
	if a.prompt {
		fmt.Fprintf(a.out, "%s> ", a.status())
	}
}

func (a *App) status() string {
	switch a.screen {
	case ScreenEditor:
		if a.session != nil && a.session.Draft().Persisted() {
			return fmt.Sprintf("%s #%d", a.tr.T("note"), a.session.ID())
		}
		return a.tr.T("note")
	case ScreenSettings:
		return a.tr.T("settings")
	default:
		return a.tr.T("notes")
	}
}

func (a *App) help() string {
	switch a.screen {
	case ScreenEditor:
		return "Available commands: title <text>, text, show, save, delete, back, list, settings, exit"
	case ScreenSettings:
		return "Available commands: theme <system|dark|light>, lang <system|en|ru>, reset [theme|language], back, list, exit"
	default:
		return "Available commands: (l)ist, new, open <id>, rm <id>, settings, exit"
	}
}

// toList is the editor's navigator.
func (a *App) toList() {
	a.session = nil
	a.screen = ScreenList
}

// leaveEditor flushes and closes the open session, if any.
func (a *App) leaveEditor(ctx context.Context) error {
	if a.session == nil {
		return nil
	}
	return a.session.Back(ctx)
}

func (a *App) fail(ctx context.Context, msg string, err error) error {
	a.log.Error(ctx, msg, "error", err)
	fmt.Fprintf(a.out, "%s: %v\n", msg, err)
	return err
}

func (a *App) requireSession() bool {
	if a.session == nil {
		fmt.Fprintln(a.out, a.tr.T("editor_closed"))
		return false
	}
	return true
}

// List leaves the editor and prints the latest snapshot of the live listing.
func (a *App) List(ctx context.Context) error {
	if err := a.leaveEditor(ctx); err != nil {
		return a.fail(ctx, "save failed", err)
	}
	a.screen = ScreenList
	if err := a.refresh(ctx); err != nil {
		return a.fail(ctx, "list failed", err)
	}

	fmt.Fprintf(a.out, "%s\n", a.tr.T("notes"))
	if len(a.snapshot) == 0 {
		fmt.Fprintf(a.out, "  %s\n", a.tr.T("no_notes"))
		return nil
	}
	for _, n := range a.snapshot {
		fmt.Fprintf(a.out, "  #%d  %s  (%s)\n", n.ID, a.label(n), n.ModifiedAt().Format(timeLayout))
	}
	return nil
}

// refresh takes the newest pending snapshot from the listing without
// blocking. Without a live listing, or once it has ended, it reads the store.
func (a *App) refresh(ctx context.Context) error {
	if a.listing != nil {
		select {
		case v, ok := <-a.listing:
			if ok {
				a.snapshot = v
				return nil
			}
			a.listing = nil
		default:
			return nil
		}
	}

	all, err := a.notes.List(ctx)
	if err != nil {
		return err
	}
	a.snapshot = all
	return nil
}

func (a *App) label(n models.Note) string {
	if t := strings.TrimSpace(n.Title); t != "" {
		return t
	}
	if c := strings.TrimSpace(n.Content); c != "" {
		first, _, _ := strings.Cut(c, "\n")
		return first
	}
	return a.tr.T("untitled")
}

func (a *App) New(ctx context.Context) error {
	if err := a.leaveEditor(ctx); err != nil {
		return a.fail(ctx, "save failed", err)
	}
	a.session = editor.NewSession(a.notes, editor.NavigatorFunc(a.toList), a.log)
	a.screen = ScreenEditor
	return nil
}

func (a *App) Open(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: open <id>")
		return err
	}
	if err := a.leaveEditor(ctx); err != nil {
		return a.fail(ctx, "save failed", err)
	}

	s := editor.NewSession(a.notes, editor.NavigatorFunc(a.toList), a.log)
	if err := s.Open(ctx, id); err != nil {
		return a.fail(ctx, "open failed", err)
	}
	a.session = s
	a.screen = ScreenEditor
	return a.Show(ctx)
}

// Remove deletes a note straight from the list after confirmation.
func (a *App) Remove(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: rm <id>")
		return err
	}
	note, err := a.notes.GetByID(ctx, id)
	if errors.Is(err, common.ErrNotFound) {
		fmt.Fprintln(a.out, a.tr.T("not_found"))
		return nil
	}
	if err != nil {
		return a.fail(ctx, "delete failed", err)
	}
	if !a.confirmDelete() {
		return nil
	}
	if err := a.notes.Delete(ctx, note); err != nil {
		return a.fail(ctx, "delete failed", err)
	}
	fmt.Fprintln(a.out, a.tr.T("deleted"))
	return nil
}

func (a *App) confirmDelete() bool {
	prompt := a.tr.T("delete_confirmation_title") + " " + a.tr.T("delete_confirmation_message")
	if Confirm(a.reader, prompt, a.out) {
		return true
	}
	fmt.Fprintln(a.out, a.tr.T("cancel"))
	return false
}

func (a *App) Title(ctx context.Context, text string) error {
	if !a.requireSession() {
		return nil
	}
	a.session.SetTitle(text)
	return nil
}

func (a *App) Text(ctx context.Context) error {
	if !a.requireSession() {
		return nil
	}
	content, err := GetMultiline(a.reader, a.tr.T("note"), a.out)
	if err != nil {
		return err
	}
	a.session.SetContent(content)
	return nil
}

func (a *App) Show(ctx context.Context) error {
	if !a.requireSession() {
		return nil
	}
	d := a.session.Draft()
	marker := ""
	if a.session.Dirty() {
		marker = " *"
	}
	fmt.Fprintf(a.out, "%s: %s%s\n", a.tr.T("title"), d.Title, marker)
	fmt.Fprintf(a.out, "%s:\n%s\n", a.tr.T("note"), d.Content)
	return nil
}

func (a *App) Save(ctx context.Context) error {
	if !a.requireSession() {
		return nil
	}
	outcome, err := a.session.Save(ctx)
	if err != nil {
		return a.fail(ctx, "save failed", err)
	}
	if outcome == editor.OutcomeNoop {
		fmt.Fprintln(a.out, a.tr.T("nothing_to_save"))
		return nil
	}
	fmt.Fprintln(a.out, a.tr.T("saved"))
	return nil
}

// Delete removes the open note after confirmation and returns to the list.
func (a *App) Delete(ctx context.Context) error {
	if !a.requireSession() {
		return nil
	}
	if !a.confirmDelete() {
		return nil
	}
	if err := a.session.Delete(ctx); err != nil {
		return a.fail(ctx, "delete failed", err)
	}
	fmt.Fprintln(a.out, a.tr.T("deleted"))
	return nil
}

func (a *App) Back(ctx context.Context) error {
	switch a.screen {
	case ScreenEditor:
		if err := a.leaveEditor(ctx); err != nil {
			return a.fail(ctx, "save failed", err)
		}
	case ScreenSettings:
		a.screen = ScreenList
	}
	return nil
}

func (a *App) Settings(ctx context.Context) error {
	if err := a.leaveEditor(ctx); err != nil {
		return a.fail(ctx, "save failed", err)
	}
	a.screen = ScreenSettings

	prefs, err := a.settings.All(ctx)
	if err != nil {
		return a.fail(ctx, "read settings failed", err)
	}

	fmt.Fprintf(a.out, "%s\n", a.tr.T("settings"))
	fmt.Fprintf(a.out, "  %s: %s\n", a.tr.T("theme"), a.tr.T(prefs[models.PreferenceTheme]))
	fmt.Fprintf(a.out, "  %s: %s\n", a.tr.T("language"), a.tr.T(prefs[models.PreferenceLanguage]))
	return nil
}

func (a *App) Theme(ctx context.Context, value string) error {
	if err := a.setPreference(ctx, models.PreferenceTheme, value); err != nil {
		return err
	}
	return a.Settings(ctx)
}

// Lang stores the language preference and switches the shell to it without
// waiting for the preference stream.
func (a *App) Lang(ctx context.Context, value string) error {
	if err := a.setPreference(ctx, models.PreferenceLanguage, value); err != nil {
		return err
	}
	a.tr.Apply(value)
	return a.Settings(ctx)
}

// Reset returns every preference to "system", or only the named one.
func (a *App) Reset(ctx context.Context, arg string) error {
	keys := models.PreferenceKeys()
	if arg != "" {
		key := models.PreferenceKey(arg)
		if !key.Known() {
			fmt.Fprintln(a.out, "Usage: reset [theme|language]")
			return fmt.Errorf("%w: %q", common.ErrUnknownPreference, arg)
		}
		keys = []models.PreferenceKey{key}
	}
	for _, k := range keys {
		if err := a.settings.Reset(k); err != nil {
			return a.fail(ctx, "reset settings failed", err)
		}
	}
	if err := a.settings.Sync(ctx); err != nil {
		return a.fail(ctx, "reset settings failed", err)
	}
	if slices.Contains(keys, models.PreferenceLanguage) {
		a.tr.Apply(models.DefaultPreference)
	}
	return a.Settings(ctx)
}

func (a *App) setPreference(ctx context.Context, key models.PreferenceKey, value string) error {
	if !models.ValidPreferenceValue(key, value) {
		fmt.Fprintf(a.out, "Usage: %s <%s>\n", key, strings.Join(key.Choices(), "|"))
		return fmt.Errorf("invalid %s %q", key, value)
	}
	if err := a.settings.Set(key, value); err != nil {
		return a.fail(ctx, "save settings failed", err)
	}
	// The settings screen reads back from the store; wait for the writer.
	if err := a.settings.Sync(ctx); err != nil {
		return a.fail(ctx, "save settings failed", err)
	}
	return nil
}

// Exit flushes the open editor session before the shell quits.
func (a *App) Exit(ctx context.Context) error {
	if a.session == nil {
		return nil
	}
	if _, err := a.session.Flush(ctx); err != nil {
		return a.fail(ctx, "save failed", err)
	}
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid note id %q", s)
	}
	return id, nil
}
