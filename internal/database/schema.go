package database

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	is_admin BOOLEAN NOT NULL DEFAULT FALSE,
	avatar TEXT,
	creation_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS comments (
	id BIGSERIAL PRIMARY KEY,
	text TEXT NOT NULL CHECK (text <> ''),
	user_id UUID NOT NULL REFERENCES users(id),
	cat INTEGER CHECK (cat BETWEEN 1 AND 27),
	like_count INTEGER NOT NULL DEFAULT 0 CHECK (like_count >= 0),
	liked_by TEXT[] NOT NULL DEFAULT '{}',
	creation_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS password_resets (
	email TEXT PRIMARY KEY,
	code CHAR(6) NOT NULL,
	expires TIMESTAMPTZ NOT NULL
);
`
