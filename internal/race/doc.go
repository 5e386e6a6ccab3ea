// Package race implements the racing game simulation engine.
//
// The package defines the building blocks of a single race:
//
//   - [Car]: a named participant with a non-decreasing position
//   - [Cars]: the validated, ordered set of cars taking part in a race
//   - [Draw]: the injected source of per-car, per-round randomness
//   - [Field]: runs rounds and records a snapshot after each one
//   - [Record]: the append-only, round-ordered results of a race
//
// # Example
//
//	cars, err := race.ParseCars("pobi,woni,jun")
//	if err != nil {
//		return err
//	}
//	field := race.NewField(cars, race.NewRandDraw(seed))
//	if err := field.Run(5); err != nil {
//		return err
//	}
//	winners := field.Winners()
//
// # Thread Safety
//
// Field and Cars are NOT thread-safe. A race runs to completion on the
// calling goroutine. For many independent races in parallel, use [Ensemble],
// which gives every race its own cars, field and draw.
package race
