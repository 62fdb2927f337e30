package schema

const schema = `CREATE TABLE IF NOT EXISTS notes (
	id        VARCHAR(36) NOT NULL PRIMARY KEY,
	content   MEDIUMTEXT  NOT NULL,
	viewed    BOOLEAN     NOT NULL DEFAULT FALSE,
	createdAt DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
	INDEX notes_viewed_created (viewed, createdAt)
) ENGINE = InnoDB`

const dropSchema = `DROP TABLE IF EXISTS notes`
