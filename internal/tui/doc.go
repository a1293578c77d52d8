// Package tui implements the interactive terminal client for Agri-Advisor.
//
// Built on Bubble Tea, the screen is a single form (location and question)
// with the session state rendered beneath it:
//   - Idle: tips for writing a good question
//   - Loading: spinner and a bar showing how much of the 30 second
//     deadline has been used; the form is blurred and ignores input
//   - Success: the result cards in a scrolling viewport
//   - Failure: the error box, dismissed with esc
//
// The request runs in a tea.Cmd and reports back with the ticket it was
// started under, so an answer that arrives after the session moved on is
// dropped.
//
// # Key Bindings
//
//   - tab / shift+tab: move between fields (enter on the location also moves on)
//   - ctrl+s: get advice (only when both fields hold text)
//   - esc: dismiss an error
//   - ctrl+y: copy the advice text to the clipboard
//   - pgup / pgdn: scroll the results
//   - ctrl+c: quit
//
// # Usage Example
//
//	app := tui.NewAppModel(advisor.NewClient(baseURL), tui.Options{BaseURL: baseURL, Zoom: 10})
//	program := tea.NewProgram(app, tea.WithAltScreen())
//
//	if _, err := program.Run(); err != nil {
//	    return err
//	}
package tui
