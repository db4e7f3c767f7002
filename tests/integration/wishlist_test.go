package integration

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/farmart-ke/farmart-backend/internal/domain/wishlist"
	"github.com/farmart-ke/farmart-backend/pkg/response"
)

type wishlistEnvelope struct {
	Message string               `json:"message"`
	Item    wishlist.WishlistDTO `json:"item"`
}

func animalIDNum(t *testing.T, id string) uint64 {
	n, err := strconv.ParseUint(id, 10, 64)
	require.NoError(t, err)
	return n
}

func addToWishlist(t *testing.T, token string, animalID uint64) wishlist.WishlistDTO {
	resp := doRequest(t, "POST", "/api/wishlist", token, map[string]interface{}{
		"animal_id": animalID,
	}, http.StatusCreated)

	var result wishlistEnvelope
	err := json.Unmarshal(resp.Body.Bytes(), &result)
	require.NoError(t, err)
	require.Equal(t, "Added to wishlist", result.Message)
	return result.Item
}

func TestAddToWishlist(t *testing.T) {
	farmerToken := loginUser(t, farmerEmail, testPassword)
	a := createAnimal(t, farmerToken, map[string]interface{}{"species": "Cow", "breed": "Friesian", "price": 160000})

	buyerToken := loginUser(t, buyerEmail, testPassword)
	item := addToWishlist(t, buyerToken, animalIDNum(t, a.ID))

	require.Equal(t, a.ID, item.AnimalID)
	require.NotNil(t, item.Animal)
	require.Equal(t, "Cow", item.Animal.Species)
}

func TestAddToWishlist_Duplicate(t *testing.T) {
	farmerToken := loginUser(t, farmerEmail, testPassword)
	a := createAnimal(t, farmerToken, map[string]interface{}{"species": "Goat", "price": 9000})

	buyerToken := loginUser(t, buyerEmail, testPassword)
	id := animalIDNum(t, a.ID)
	addToWishlist(t, buyerToken, id)

	resp := doRequest(t, "POST", "/api/wishlist", buyerToken, map[string]interface{}{
		"animal_id": id,
	}, http.StatusOK)
	require.Contains(t, resp.Body.String(), "Item already in wishlist")
}

func TestAddToWishlist_MissingAnimalID(t *testing.T) {
	buyerToken := loginUser(t, buyerEmail, testPassword)

	resp := doRequest(t, "POST", "/api/wishlist", buyerToken, map[string]interface{}{}, http.StatusBadRequest)
	require.Contains(t, resp.Body.String(), "Missing required field: animal_id")
}

func TestAddToWishlist_UnknownAnimal(t *testing.T) {
	buyerToken := loginUser(t, buyerEmail, testPassword)

	resp := doRequest(t, "POST", "/api/wishlist", buyerToken, map[string]interface{}{
		"animal_id": 999999,
	}, http.StatusInternalServerError)

	var crash response.CrashResponse
	err := json.Unmarshal(resp.Body.Bytes(), &crash)
	require.NoError(t, err)
	require.Equal(t, "Backend Crash", crash.Error)
	require.NotEmpty(t, crash.Details)
}

func TestListWishlist(t *testing.T) {
	farmerToken := loginUser(t, farmerEmail, testPassword)
	a := createAnimal(t, farmerToken, map[string]interface{}{"species": "Sheep", "price": 7500})

	buyerToken := loginUser(t, buyerEmail, testPassword)
	addToWishlist(t, buyerToken, animalIDNum(t, a.ID))

	resp := doRequest(t, "GET", "/api/wishlist", buyerToken, nil, http.StatusOK)

	var items []wishlist.WishlistDTO
	err := json.Unmarshal(resp.Body.Bytes(), &items)
	require.NoError(t, err)
	require.NotEmpty(t, items)

	var found bool
	for _, item := range items {
		if item.AnimalID == a.ID {
			found = true
			require.NotNil(t, item.Animal)
		}
	}
	require.True(t, found, "expected the added animal in the wishlist")
}

func TestWishlistCheck(t *testing.T) {
	farmerToken := loginUser(t, farmerEmail, testPassword)
	added := createAnimal(t, farmerToken, map[string]interface{}{"species": "Rabbit", "price": 1500})
	notAdded := createAnimal(t, farmerToken, map[string]interface{}{"species": "Duck", "price": 800})

	buyerToken := loginUser(t, buyerEmail, testPassword)
	addToWishlist(t, buyerToken, animalIDNum(t, added.ID))

	resp := doRequest(t, "GET", "/api/wishlist/check/"+added.ID, buyerToken, nil, http.StatusOK)
	var check response.WishlistCheckResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &check))
	require.True(t, check.InWishlist)

	resp = doRequest(t, "GET", "/api/wishlist/check/"+notAdded.ID, buyerToken, nil, http.StatusOK)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &check))
	require.False(t, check.InWishlist)
}

func TestWishlistCheck_BadID(t *testing.T) {
	buyerToken := loginUser(t, buyerEmail, testPassword)

	resp := doRequest(t, "GET", "/api/wishlist/check/abc", buyerToken, nil, http.StatusBadRequest)
	require.Contains(t, resp.Body.String(), "Invalid animal id")
}

func TestWishlistCount(t *testing.T) {
	countEmail := "countbuyer@farmart.test"
	doRequest(t, "POST", "/api/auth/register", "", map[string]string{
		"email":    countEmail,
		"password": testPassword,
		"role":     "buyer",
	}, http.StatusCreated)
	token := loginUser(t, countEmail, testPassword)

	resp := doRequest(t, "GET", "/api/wishlist/count", token, nil, http.StatusOK)
	var count response.CountResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &count))
	require.Equal(t, int64(0), count.Count)

	farmerToken := loginUser(t, farmerEmail, testPassword)
	a := createAnimal(t, farmerToken, map[string]interface{}{"species": "Turkey", "price": 3000})
	addToWishlist(t, token, animalIDNum(t, a.ID))

	resp = doRequest(t, "GET", "/api/wishlist/count", token, nil, http.StatusOK)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &count))
	require.Equal(t, int64(1), count.Count)
}

func TestRemoveFromWishlist(t *testing.T) {
	farmerToken := loginUser(t, farmerEmail, testPassword)
	a := createAnimal(t, farmerToken, map[string]interface{}{"species": "Donkey", "price": 25000})

	buyerToken := loginUser(t, buyerEmail, testPassword)
	item := addToWishlist(t, buyerToken, animalIDNum(t, a.ID))

	resp := doRequest(t, "DELETE", "/api/wishlist/"+item.ID, buyerToken, nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), "Removed from wishlist")

	resp = doRequest(t, "DELETE", "/api/wishlist/"+item.ID, buyerToken, nil, http.StatusNotFound)
	require.Contains(t, resp.Body.String(), "Wishlist item not found or access denied")
}

func TestWishlist_Unauthenticated(t *testing.T) {
	doRequest(t, "GET", "/api/wishlist", "", nil, http.StatusUnauthorized)
}
