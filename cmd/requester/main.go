// requester generates tracking lookups against a running service, including invalid and
// unknown order numbers.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "service base url")
	orderNumber := flag.String("order", "GU123456789", "existing order number")
	flag.Parse()

	client := &http.Client{Timeout: 5 * time.Second}

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() {
				doRequest(client, *baseURL, pickNumber(*orderNumber))
			})
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomNumber(length int) string {
	chars := []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	id := make([]rune, length)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	return string(id)
}

func pickNumber(existing string) string {
	switch rand.Intn(10) {
	case 0:
		return "GU"
	case 1, 2:
		return "GU" + randomNumber(9)
	default:
		return existing
	}
}

func doRequest(client *http.Client, baseURL, number string) {
	body, _ := json.Marshal(map[string]string{"orderNumber": number})

	resp, err := client.Post(baseURL+"/track-order", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	defer resp.Body.Close()
	fmt.Println("POST /track-order", number, "->", resp.Status)
}
