package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created_at DATETIME NOT NULL,
	s0 REAL NOT NULL,
	mu REAL NOT NULL,
	sigma REAL NOT NULL,
	horizon REAL NOT NULL,
	steps INTEGER NOT NULL,
	seed INTEGER,
	terminal REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS samples (
	run_id TEXT NOT NULL,
	idx INTEGER NOT NULL,
	t REAL NOT NULL,
	value REAL NOT NULL,
	PRIMARY KEY (run_id, idx)
);
`
