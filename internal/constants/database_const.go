// Package constants provides shared constant values used throughout the application.
//
// The database_const.go file defines constants related to database structures,
// including the schema name, table names, and column names. These constants
// ensure consistent database access patterns throughout the application and
// reduce the risk of SQL errors when the schema changes.
package constants

// SchemaName is the dedicated namespace holding all application tables.
const SchemaName = "dirty_secrets"

// Table Names define the names of database tables used in the application.
const (
	// TableUsers is the schema-qualified name of the table storing users.
	TableUsers = SchemaName + ".users"

	// TableSecrets is the schema-qualified name of the table storing secrets.
	TableSecrets = SchemaName + ".secrets"
)

// Column Names define the database column names used in SQL statements.
const (
	// ColumnUserID is the primary key column of the users table and the
	// foreign key column of the secrets table.
	ColumnUserID = "user_id"

	// ColumnFirstName is the column storing a user's first name.
	ColumnFirstName = "fname"

	// ColumnLastName is the column storing a user's last name.
	ColumnLastName = "lname"

	// ColumnSecretID is the primary key column of the secrets table.
	ColumnSecretID = "secret_id"

	// ColumnTitle is the column storing a secret's title.
	ColumnTitle = "title"

	// ColumnContents is the column storing a secret's contents.
	ColumnContents = "contents"
)
