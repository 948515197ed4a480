// Package client builds the Kubernetes client used to read settings
// documents stored in ConfigMaps.
//
// GetKubeClient returns a process-wide client, built once:
//
//	clientset, _, err := client.GetKubeClient()
//	if err != nil {
//	    return fmt.Errorf("failed to get kubernetes client: %w", err)
//	}
//	cm, err := clientset.CoreV1().ConfigMaps("lms").Get(ctx, "course-settings", metav1.GetOptions{})
//
// Configuration is discovered from $KUBECONFIG, then ~/.kube/config, then
// the in-cluster service account. BuildKubeClient takes an explicit
// kubeconfig path and bypasses the cache.
package client
