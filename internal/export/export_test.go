package export

import (
	"bufio"
	"bytes"
	"encoding/json"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stoned/frontier"
	"github.com/katalvlaran/stoned/model"
	"github.com/katalvlaran/stoned/shape"
)

func assembleLog(t *testing.T) *model.Model {
	t.Helper()
	m, err := frontier.Assemble(frontier.Data{
		X: shape.Scalars([]float64{1, 2, 3}),
		Y: shape.Scalars([]float64{1, 2, 2}),
	}, frontier.Config{ErrorModel: frontier.Multiplicative, Loss: frontier.Quantile(0.5)})
	require.NoError(t, err)

	return m
}

func readLines(t *testing.T, path string) [][]byte {
	t.Helper()
	rc, err := Open(path)
	require.NoError(t, err)
	defer rc.Close() //nolint:errcheck

	var out [][]byte
	sc := bufio.NewScanner(rc)
	for sc.Scan() {
		out = append(out, append([]byte(nil), sc.Bytes()...))
	}
	require.NoError(t, sc.Err())

	return out
}

func TestWriteFile_PlainAndCompressed(t *testing.T) {
	m := assembleLog(t)
	dir := t.TempDir()
	plain := filepath.Join(dir, "model.jsonl")
	packed := filepath.Join(dir, "model.jsonl.zst")
	require.NoError(t, WriteFile(plain, m))
	require.NoError(t, WriteFile(packed, m))

	a, b := readLines(t, plain), readLines(t, packed)
	assert.Equal(t, a, b)

	blocks := len(m.Variables().Blocks())
	require.Len(t, a, 1+blocks+1+m.NumConstraints())

	var h Header
	require.NoError(t, json.Unmarshal(a[0], &h))
	assert.Equal(t, KindHeader, h.Kind)
	assert.Equal(t, "CQR", h.Name)
	assert.Equal(t, strconv.FormatUint(m.Fingerprint(), 16), h.Fingerprint)
	assert.Equal(t, []string{"regression", "frontier", "concavity"}, h.Families)
	assert.Equal(t, m.NumVariables(), h.Variables)
}

func TestWrite_Records(t *testing.T) {
	m := assembleLog(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m))
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))

	var alpha, beta Block
	require.NoError(t, json.Unmarshal(lines[1], &alpha))
	require.NoError(t, json.Unmarshal(lines[2], &beta))
	assert.Equal(t, "alpha", alpha.Name)
	assert.Nil(t, alpha.Lower)
	assert.Nil(t, alpha.Upper)
	require.NotNil(t, beta.Lower)
	assert.Equal(t, 0.0, *beta.Lower)
	assert.Equal(t, 3, beta.Offset)

	blocks := len(m.Variables().Blocks())
	var obj Objective
	require.NoError(t, json.Unmarshal(lines[1+blocks], &obj))
	assert.Equal(t, "minimize", obj.Sense)
	assert.Len(t, obj.Linear, 6)
	assert.Empty(t, obj.Quadratic)

	var reg Constraint
	require.NoError(t, json.Unmarshal(lines[2+blocks], &reg))
	assert.Equal(t, "regression[0]", reg.Name)
	assert.Equal(t, "=", reg.Sense)
	require.Len(t, reg.Logs, 1)
	assert.Equal(t, 1.0, reg.Logs[0].Coef)
	assert.Equal(t, 1.0, reg.Logs[0].Const)

	var last Constraint
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &last))
	assert.Equal(t, "concavity[2,1]", last.Name)
	assert.Equal(t, "<=", last.Sense)
}
