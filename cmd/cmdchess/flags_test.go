package main

import (
	"runtime"
	"testing"

	"github.com/lgbarn/cmdchess-go/internal/config"
	"github.com/lgbarn/cmdchess-go/internal/testutil"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	applyFlags(cfg)

	testutil.AssertEqual(t, cfg.Game.FEN, "")
	testutil.AssertEqual(t, cfg.MoveLog.Dir, config.DefaultLogDir)
	testutil.AssertEqual(t, cfg.MoveLog.Restore, "")
	testutil.AssertEqual(t, cfg.Output.LogLevel, "warn")
	testutil.AssertEqual(t, cfg.Verify.Workers, runtime.GOMAXPROCS(0))
	testutil.AssertNoError(t, cfg.Validate())
}

func TestApplyFlags(t *testing.T) {
	defer saveRestoreString(startFEN, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")()
	defer saveRestoreString(logDir, "games")()
	defer saveRestoreString(restoreName, "opening")()
	defer saveRestoreBool(silent, true)()
	defer saveRestoreString(logLevel, "debug")()
	defer saveRestoreBool(showAttacks, true)()
	defer saveRestoreBool(flipBoard, true)()
	defer saveRestoreInt(workers, 3)()

	cfg := config.NewConfig()
	applyFlags(cfg)

	testutil.AssertEqual(t, cfg.Game.FEN, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertEqual(t, cfg.MoveLog.Dir, "games")
	testutil.AssertEqual(t, cfg.MoveLog.Restore, "opening")
	testutil.AssertTrue(t, cfg.MoveLog.Silent, "Silent")
	testutil.AssertEqual(t, cfg.Output.LogLevel, "debug")
	testutil.AssertTrue(t, cfg.Output.ShowAttacks, "ShowAttacks")
	testutil.AssertTrue(t, cfg.Output.Flip, "Flip")
	testutil.AssertEqual(t, cfg.Verify.Workers, 3)
	testutil.AssertEqual(t, cfg.Verify.BufferSize, 6)
	testutil.AssertNoError(t, cfg.Validate())
}

func TestApplyFlags_InvalidRestoreName(t *testing.T) {
	defer saveRestoreString(restoreName, "c:opening")()

	cfg := config.NewConfig()
	applyFlags(cfg)
	testutil.AssertError(t, cfg.Validate())
}
