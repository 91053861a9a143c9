package save

import (
	"fmt"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/shared"
)

// Domain errors for save-file versioning

// ErrMalformedVersion indicates a version string that is not exactly three
// dot-separated integers.
type ErrMalformedVersion struct {
	*shared.VersionError
	Raw string
}

func NewErrMalformedVersion(raw string) *ErrMalformedVersion {
	return &ErrMalformedVersion{
		VersionError: shared.NewVersionError(
			fmt.Sprintf("malformed version %q: want MAJOR.MINOR.PATCH", raw)),
		Raw: raw,
	}
}

func (e *ErrMalformedVersion) Unwrap() error { return e.VersionError }

// ErrSnapshotTooNew indicates a snapshot from a later major line than the
// running engine.
type ErrSnapshotTooNew struct {
	*shared.VersionError
	Snapshot SemVer
	Engine   SemVer
}

func NewErrSnapshotTooNew(snapshot, engine SemVer) *ErrSnapshotTooNew {
	return &ErrSnapshotTooNew{
		VersionError: shared.NewVersionError(
			fmt.Sprintf("snapshot version %s is too new for engine %s", snapshot, engine)),
		Snapshot: snapshot,
		Engine:   engine,
	}
}

func (e *ErrSnapshotTooNew) Unwrap() error { return e.VersionError }

// ErrSnapshotTooOld indicates a snapshot from an earlier major line; no
// migration across major lines exists.
type ErrSnapshotTooOld struct {
	*shared.VersionError
	Snapshot SemVer
	Engine   SemVer
}

func NewErrSnapshotTooOld(snapshot, engine SemVer) *ErrSnapshotTooOld {
	return &ErrSnapshotTooOld{
		VersionError: shared.NewVersionError(
			fmt.Sprintf("snapshot version %s is too old for engine %s, no migration available", snapshot, engine)),
		Snapshot: snapshot,
		Engine:   engine,
	}
}

func (e *ErrSnapshotTooOld) Unwrap() error { return e.VersionError }
