package sqlite

// Schema is the DDL of the segments table read by Source. Travel rows fill
// kind (the mode), origin, destination, date, start_time and end_time;
// stay rows fill kind, location, from_date and to_date. Rows are read in
// segment_id order.
const Schema = `CREATE TABLE IF NOT EXISTS segments (
    segment_id INTEGER PRIMARY KEY,
    category TEXT NOT NULL,
    kind TEXT NOT NULL,
    origin TEXT,
    destination TEXT,
    date TEXT,
    start_time TEXT,
    end_time TEXT,
    location TEXT,
    from_date TEXT,
    to_date TEXT
);`

const selectSegments = `SELECT segment_id, category, kind,
    origin, destination, date, start_time, end_time,
    location, from_date, to_date
FROM segments
ORDER BY segment_id`
