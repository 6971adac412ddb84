package asset

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/rsolis096/RealTimeRT/log"
)

var (
	ErrIncludeCycle    = errors.New("shader loader: include cycle")
	ErrIncludeNotFound = errors.New("shader loader: include not found")
)

var (
	includeRegex = regexp.MustCompile(`^\s*#\s*include\s+["<]([^">]+)[">]`)

	// Includes are expanded on the host so the extension directive is not
	// needed by the driver.
	includeExtRegex = regexp.MustCompile(`^\s*#\s*extension\s+GL_ARB_shading_language_include\b`)
)

// ShaderLoader reads GLSL sources and expands #include directives.
//
// Quoted include paths are first resolved relative to the including file.
// Paths with a leading slash, and relative paths that can not be found next
// to the including file, are looked up in IncludePaths in order.
type ShaderLoader struct {
	IncludePaths []string

	logger log.Logger
}

// Create a new shader loader with the given include search paths. Search
// paths may be local directories or http/https base URLs.
func NewShaderLoader(includePaths ...string) *ShaderLoader {
	return &ShaderLoader{
		IncludePaths: includePaths,
		logger:       log.New("shader loader"),
	}
}

// Load a shader and expand all of its includes.
func (l *ShaderLoader) Load(pathToShader string) (string, error) {
	res, err := NewResource(pathToShader, nil)
	if err != nil {
		return "", err
	}
	defer res.Close()

	return l.LoadResource(res)
}

// Expand the includes of an already opened shader resource.
func (l *ShaderLoader) LoadResource(res *Resource) (string, error) {
	start := time.Now()

	var out bytes.Buffer
	err := l.expand(res, &out, nil)
	if err != nil {
		return "", err
	}

	l.logger.Debugf("loaded shader %s in %d ms", res.Path(), time.Since(start).Nanoseconds()/1e6)
	return out.String(), nil
}

func (l *ShaderLoader) expand(res *Resource, out *bytes.Buffer, stack []string) error {
	key := canonicalPath(res)
	for _, path := range stack {
		if path == key {
			return fmt.Errorf("%w: %s", ErrIncludeCycle, strings.Join(append(stack, key), " -> "))
		}
	}
	stack = append(stack, key)

	scanner := bufio.NewScanner(res)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		if includeExtRegex.MatchString(line) {
			continue
		}

		matches := includeRegex.FindStringSubmatch(line)
		if matches == nil {
			out.WriteString(line)
			out.WriteByte('\n')
			continue
		}

		incRes, err := l.openInclude(matches[1], res)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", res.Path(), lineNum, err)
		}
		err = l.expand(incRes, out, stack)
		incRes.Close()
		if err != nil {
			return err
		}
	}

	return scanner.Err()
}

// Locate an included file.
func (l *ShaderLoader) openInclude(name string, parent *Resource) (*Resource, error) {
	if !strings.HasPrefix(name, "/") {
		if res, err := NewResource(name, parent); err == nil {
			return res, nil
		}
	}

	relName := strings.TrimLeft(name, "/")
	for _, dir := range l.IncludePaths {
		if res, err := NewResource(strings.TrimRight(dir, "/")+"/"+relName, nil); err == nil {
			return res, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrIncludeNotFound, name)
}

// Get a path that identifies res regardless of how it was referenced.
func canonicalPath(res *Resource) string {
	if res.IsRemote() {
		return res.Path()
	}
	if abs, err := filepath.Abs(res.Path()); err == nil {
		return abs
	}
	return res.Path()
}
