// Package cli provides the interactive crystalpad shell.
//
// The shell mirrors the three screens of the notes app: the note list, the
// note editor and the settings. The list is rendered from the live note
// feed, the editor is an editor.Session whose navigator returns to the list,
// and labels come from an i18n.Translator that follows the stored language
// preference.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// Leaving the editor by any route, including exit and end of input, saves
// the draft first. See App and runREPL for details.
package cli
