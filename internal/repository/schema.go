package repository

// Schema creates the tables used by the postgres store and the place gazetteer.
// Coordinates of captured locations are kept as plain numbers so that rows with
// out-of-range values can still be read back and skipped by the aggregator.
const Schema = `
CREATE EXTENSION IF NOT EXISTS postgis;

CREATE TABLE IF NOT EXISTS locations (
	id UUID PRIMARY KEY,
	user_id VARCHAR(255) NOT NULL DEFAULT '',
	latitude DOUBLE PRECISION NOT NULL,
	longitude DOUBLE PRECISION NOT NULL,
	country VARCHAR(255),
	region VARCHAR(255),
	address TEXT,
	notes TEXT,
	captured_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS locations_user_id_idx ON locations (user_id);

CREATE TABLE IF NOT EXISTS places (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	locality VARCHAR(255) NOT NULL DEFAULT '',
	region VARCHAR(255) NOT NULL DEFAULT '',
	country VARCHAR(255) NOT NULL DEFAULT '',
	geom GEOGRAPHY(POINT, 4326) NOT NULL
);
CREATE INDEX IF NOT EXISTS places_geom_idx ON places USING GIST (geom);
`
