package mysql

const upsertPropertySQL = `
INSERT INTO properties
  (id, position, name, state, city, country, rating, category, price,
   offer_bed, offer_shower, offer_occupants, image, discount)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  position        = VALUES(position),
  name            = VALUES(name),
  state           = VALUES(state),
  city            = VALUES(city),
  country         = VALUES(country),
  rating          = VALUES(rating),
  category        = VALUES(category),
  price           = VALUES(price),
  offer_bed       = VALUES(offer_bed),
  offer_shower    = VALUES(offer_shower),
  offer_occupants = VALUES(offer_occupants),
  image           = VALUES(image),
  discount        = VALUES(discount),
  updated_at      = CURRENT_TIMESTAMP
`

const insertReviewsPrefix = "INSERT INTO sample_reviews\n  (id, comment, rating, author, review_date)\nVALUES "

const insertReviewsOnDup = " ON DUPLICATE KEY UPDATE\n" +
	"  comment     = VALUES(comment),\n" +
	"  rating      = VALUES(rating),\n" +
	"  author      = VALUES(author),\n" +
	"  review_date = VALUES(review_date)\n"

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const propertyColumns = `
  id, name, state, city, country, rating, category, price,
  offer_bed, offer_shower, offer_occupants, image, discount`

// Dataset order is the load position, so listings page the same way the
// in-memory sample does.
const listPropertiesSQL = `SELECT` + propertyColumns + `
FROM properties
ORDER BY position, id
`

const getPropertySQL = `SELECT` + propertyColumns + `
FROM properties
WHERE id = ?
`

const listReviewsSQL = `
SELECT id, comment, rating, author, DATE_FORMAT(review_date, '%Y-%m-%d')
FROM sample_reviews
ORDER BY CAST(id AS UNSIGNED), id
`
