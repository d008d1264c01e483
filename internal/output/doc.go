// Package output provides styled terminal output for the generator CLIs.
//
// # Usage
//
//	output.Created("uber-clone/src/App.js")
//	output.Success("Uber Clone frontend scaffold complete!")
//	output.Error("Something went wrong")
//
// # Verbose Mode
//
// Enable verbose output for debugging:
//
//	output.SetVerbose(true)
//	output.Verbose("This only prints in verbose mode")
//
// # Styling
//
// Styles use lipgloss and are applied only when the output is a terminal.
// Redirected or captured output is plain text with no emoji prefix, so
// lines such as "Created: <path>" can be matched exactly:
//
//   - Success: 🔥 green bold
//   - Error: ❌ red bold
//   - Info: ℹ️ cyan
//   - Step: indented gray
//   - Created: gray
//   - Verbose: 🔍 gray (when enabled)
package output
