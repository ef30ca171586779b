// Package oslg provides a status-tracking logger for validation code.
//
// Entries are kept in memory together with a status: the highest level
// accepted since the last Clean. Hosts log while validating a model and
// inspect Status or Logs at the end of a unit of work to decide how to
// report it.
//
// # Features
//
//   - Global package-level functions backed by a default Logger
//   - Independent Logger values via New, safe for concurrent use
//   - Levels DEBUG, INFO, WARNING, ERROR and FATAL; entries below the
//     reporting level are dropped
//   - Templated diagnostics: Invalid, Mismatch, Hashkey, Empty, Zero, Negative
//   - Reporting level from YAML or the OSLG_LEVEL environment variable
//
// # Usage
//
// Initialize once at startup (optional, the default level is INFO):
//
//	cfg, err := oslg.LoadConfig(nil)
//	if err != nil {
//	    return err
//	}
//	oslg.Init(cfg)
//
// Log directly:
//
//	oslg.Log(oslg.WarnLevel, "surface has no construction")
//
// Or through a guard, returning a fallback value in one line:
//
//	func area(r any) float64 {
//	    radius, ok := r.(float64)
//	    if !ok {
//	        return oslg.Mismatch("radius", r, oslg.TypeOf[float64](), "area", oslg.ErrorLevel, 0.0)
//	    }
//	    if radius < 0 {
//	        return oslg.Negative("radius", "area", oslg.ErrorLevel, 0.0)
//	    }
//	    return math.Pi * radius * radius
//	}
//
// Check the outcome:
//
//	if oslg.Status() >= oslg.ErrorLevel {
//	    fmt.Println(oslg.Msg(oslg.Status()))
//	}
//
// # Status
//
// The status only rises: a DEBUG entry after a FATAL one leaves it at
// FATAL. Clean drops the entries and zeroes the status but keeps the
// reporting level, which only Reset changes.
//
// Invalid input never panics or returns an error; the call is ignored.
package oslg
