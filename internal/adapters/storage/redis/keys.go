package redis

// Layout:
//
//	<prefix>person:<id>        hash  id, first_name, last_name
//	<prefix>people             zset  ids con score 0 (orden lexicográfico)
//	<prefix>person:<id>:pets   set   ids de pets
//	<prefix>pet:<id>           hash  id, name, person_id
//	<prefix>account:<email>    hash  id, email, password
const DefaultPrefix = "people:"

type keys struct {
	prefix string
}

func (k keys) person(id string) string     { return k.prefix + "person:" + id }
func (k keys) index() string               { return k.prefix + "people" }
func (k keys) petsOf(id string) string     { return k.prefix + "person:" + id + ":pets" }
func (k keys) petPrefix() string           { return k.prefix + "pet:" }
func (k keys) pet(id string) string        { return k.petPrefix() + id }
func (k keys) account(email string) string { return k.prefix + "account:" + email }
