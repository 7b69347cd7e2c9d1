package helper

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	coreos "github.com/coreos/go-semver/semver"
	"github.com/untillpro/goutils/exec"
	"github.com/untillpro/goutils/logger"
)

const modulePath = "github.com/untillpro/qb"

// GetInstalledVersion reads the module version baked into the installed binary.
func GetInstalledVersion() (string, error) {
	stdout, stderr, err := new(exec.PipedExec).
		Command("go", "env", "GOPATH").
		RunToStrings()
	if err != nil {
		return "", fmt.Errorf("GetInstalledVersion error: %s", stderr)
	}

	gopath := strings.TrimSpace(stdout)
	if len(gopath) == 0 {
		return "", errors.New("GetInstalledVersion error: \"GOPATH is not defined\"")
	}
	qbExe := "qb"
	if runtime.GOOS == "windows" {
		qbExe = "qb.exe"
	}

	stdout, stderr, err = new(exec.PipedExec).
		Command("go", "version", "-m", gopath+"/bin/"+qbExe).
		Command("grep", "-i", "-h", "mod.*"+modulePath).
		Command("gawk", "{print $3}").
		RunToStrings()
	if err != nil {
		return "", fmt.Errorf("GetInstalledVersion error: %s", stderr)
	}

	return strings.TrimSpace(stdout), nil
}

// GetLastVersion returns the newest released version of the module, or ""
// when the module proxy cannot be reached.
func GetLastVersion() string {
	stdout, stderr, err := new(exec.PipedExec).
		Command("go", "list", "-m", "-versions", modulePath).
		RunToStrings()
	if err != nil {
		logger.Error("GetLastVersion error:", stderr)

		return ""
	}

	arr := strings.Split(strings.TrimSpace(stdout), " ")
	if len(arr) < 2 {
		return ""
	}

	return arr[len(arr)-1]
}

// IsOutdated reports whether installed is an older semver than latest.
// Unparsable versions (dev builds, "(devel)") never count as outdated.
func IsOutdated(installed, latest string) bool {
	iv, err := coreos.NewVersion(strings.TrimPrefix(installed, "v"))
	if err != nil {
		return false
	}
	lv, err := coreos.NewVersion(strings.TrimPrefix(latest, "v"))
	if err != nil {
		return false
	}

	return iv.LessThan(*lv)
}
