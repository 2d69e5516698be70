package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTree creates files under root, keys are slash separated relative paths
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
}

// projectTree mirrors a small project with app code, tests, vendored
// modules and an old backup directory
func projectTree(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "my-project")
	writeTree(t, root, map[string]string{
		"app/index.ts": `import * as path from 'path';
import memwatch from '@airbnb/node-memwatch';
import { partial } from '@airbnb/example-lib/partial';
import v1 from 'uuid/v1';
import v4 from "uuid/v4";

const crypto = require('crypto');
`,
		"app/helpers.js": `const fs = require('fs');
const util = require("util");
const sharp = require('sharp');
const local = require('./local');
`,
		"app/empty/index.js": "module.exports = {};\n",
		"test/index.js": `const { expect } = require('chai');
const sharp = require('sharp');
`,
		"node_modules/submodule1/index.js": "module.exports = require('submodule1');\n",
		"node_modules/submodule2/index.js": "module.exports = require('submodule2');\n",
		".old/legacy.js":                   "const gm = require('gm');\nconst magic = require('image-magic');\n",
	})
	return root
}
